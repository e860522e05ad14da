package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"company_crud/internal/audit"
	"company_crud/internal/hierarchy"
)

func ListTeams(svc *hierarchy.TeamService, departmentParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		departmentID, ok := pathID(c, departmentParam)
		if !ok {
			return
		}
		teams, err := svc.ListByDepartment(c.Request.Context(), departmentID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, teams)
	}
}

func GetTeam(svc *hierarchy.TeamService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		team, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, team)
	}
}

func CreateTeam(svc *hierarchy.TeamService, rec *audit.Recorder, departmentParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		departmentID, ok := pathID(c, departmentParam)
		if !ok {
			return
		}
		var in hierarchy.TeamDTO
		if !bindBody(c, &in) {
			return
		}
		if err := hierarchy.ValidateTeam(in); err != nil {
			fail(c, err)
			return
		}
		team, err := svc.Create(c.Request.Context(), departmentID, in)
		if err != nil {
			fail(c, err)
			return
		}
		record(c, rec, "team.create", "team", team.ID, team)
		c.JSON(http.StatusCreated, team)
	}
}

func UpdateTeam(svc *hierarchy.TeamService, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var in hierarchy.TeamDTO
		if !bindBody(c, &in) {
			return
		}
		team, err := svc.Update(c.Request.Context(), id, in)
		if err != nil {
			fail(c, err)
			return
		}
		record(c, rec, "team.update", "team", team.ID, team)
		c.JSON(http.StatusOK, team)
	}
}

func DeleteTeam(svc *hierarchy.TeamService, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}
		record(c, rec, "team.delete", "team", id, nil)
		c.Status(http.StatusNoContent)
	}
}
