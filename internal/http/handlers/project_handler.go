package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"company_crud/internal/audit"
	"company_crud/internal/hierarchy"
)

func GetProject(svc *hierarchy.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		project, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, project)
	}
}

// CreateProject accepts an optional embedded "manager" object which is
// created along with the project.
func CreateProject(svc *hierarchy.ProjectService, rec *audit.Recorder, teamParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		teamID, ok := pathID(c, teamParam)
		if !ok {
			return
		}
		var in hierarchy.ProjectDTO
		if !bindBody(c, &in) {
			return
		}
		if err := hierarchy.ValidateProject(in); err != nil {
			fail(c, err)
			return
		}
		project, err := svc.Create(c.Request.Context(), teamID, in)
		if err != nil {
			fail(c, err)
			return
		}
		record(c, rec, "project.create", "project", project.ID, project)
		c.JSON(http.StatusCreated, project)
	}
}

func UpdateProject(svc *hierarchy.ProjectService, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var in hierarchy.ProjectDTO
		if !bindBody(c, &in) {
			return
		}
		project, err := svc.Update(c.Request.Context(), id, in)
		if err != nil {
			fail(c, err)
			return
		}
		record(c, rec, "project.update", "project", project.ID, project)
		c.JSON(http.StatusOK, project)
	}
}

func DeleteProject(svc *hierarchy.ProjectService, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}
		record(c, rec, "project.delete", "project", id, nil)
		c.Status(http.StatusNoContent)
	}
}
