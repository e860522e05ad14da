package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"company_crud/internal/audit"
	"company_crud/internal/hierarchy"
)

// ListDepartments lists the departments of the company named by the
// companyParam path parameter.
func ListDepartments(svc *hierarchy.DepartmentService, companyParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, ok := pathID(c, companyParam)
		if !ok {
			return
		}
		departments, err := svc.ListByCompany(c.Request.Context(), companyID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, departments)
	}
}

func GetDepartment(svc *hierarchy.DepartmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		department, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, department)
	}
}

func CreateDepartment(svc *hierarchy.DepartmentService, rec *audit.Recorder, companyParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, ok := pathID(c, companyParam)
		if !ok {
			return
		}
		var in hierarchy.DepartmentDTO
		if !bindBody(c, &in) {
			return
		}
		if err := hierarchy.ValidateDepartment(in); err != nil {
			fail(c, err)
			return
		}
		department, err := svc.Create(c.Request.Context(), companyID, in)
		if err != nil {
			fail(c, err)
			return
		}
		record(c, rec, "department.create", "department", department.ID, department)
		c.JSON(http.StatusCreated, department)
	}
}

func UpdateDepartment(svc *hierarchy.DepartmentService, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var in hierarchy.DepartmentDTO
		if !bindBody(c, &in) {
			return
		}
		department, err := svc.Update(c.Request.Context(), id, in)
		if err != nil {
			fail(c, err)
			return
		}
		record(c, rec, "department.update", "department", department.ID, department)
		c.JSON(http.StatusOK, department)
	}
}

func DeleteDepartment(svc *hierarchy.DepartmentService, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}
		record(c, rec, "department.delete", "department", id, nil)
		c.Status(http.StatusNoContent)
	}
}
