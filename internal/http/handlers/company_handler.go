package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"company_crud/internal/audit"
	"company_crud/internal/hierarchy"
)

func ListCompanies(svc *hierarchy.CompanyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		companies, err := svc.List(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, companies)
	}
}

func GetCompany(svc *hierarchy.CompanyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		company, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, company)
	}
}

func CreateCompany(svc *hierarchy.CompanyService, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in hierarchy.CompanyDTO
		if !bindBody(c, &in) {
			return
		}
		if err := hierarchy.ValidateCompany(in); err != nil {
			fail(c, err)
			return
		}
		company, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			fail(c, err)
			return
		}
		record(c, rec, "company.create", "company", company.ID, company)
		c.JSON(http.StatusCreated, company)
	}
}

func UpdateCompany(svc *hierarchy.CompanyService, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var in hierarchy.CompanyDTO
		if !bindBody(c, &in) {
			return
		}
		company, err := svc.Update(c.Request.Context(), id, in)
		if err != nil {
			fail(c, err)
			return
		}
		record(c, rec, "company.update", "company", company.ID, company)
		c.JSON(http.StatusOK, company)
	}
}

func DeleteCompany(svc *hierarchy.CompanyService, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}
		record(c, rec, "company.delete", "company", id, nil)
		c.Status(http.StatusNoContent)
	}
}
