package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"company_crud/internal/audit"
	"company_crud/internal/hierarchy"
)

func GetManager(svc *hierarchy.ManagerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		manager, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, manager)
	}
}

func CreateManager(svc *hierarchy.ManagerService, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in hierarchy.ManagerDTO
		if !bindBody(c, &in) {
			return
		}
		if err := hierarchy.ValidateManager(in); err != nil {
			fail(c, err)
			return
		}
		manager, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			fail(c, err)
			return
		}
		record(c, rec, "manager.create", "manager", manager.ID, manager)
		c.JSON(http.StatusCreated, manager)
	}
}

func UpdateManager(svc *hierarchy.ManagerService, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var in hierarchy.ManagerDTO
		if !bindBody(c, &in) {
			return
		}
		if err := hierarchy.ValidateManagerUpdate(in); err != nil {
			fail(c, err)
			return
		}
		manager, err := svc.Update(c.Request.Context(), id, in)
		if err != nil {
			fail(c, err)
			return
		}
		record(c, rec, "manager.update", "manager", manager.ID, manager)
		c.JSON(http.StatusOK, manager)
	}
}

func DeleteManager(svc *hierarchy.ManagerService, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}
		record(c, rec, "manager.delete", "manager", id, nil)
		c.Status(http.StatusNoContent)
	}
}
