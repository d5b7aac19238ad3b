package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fundraiser-shop/services"
	"github.com/yeremiapane/fundraiser-shop/utils"
)

type ScheduleController struct {
	Schedule       *services.ScheduleService
	PickupLocation string
}

func NewScheduleController(schedule *services.ScheduleService, pickupLocation string) *ScheduleController {
	return &ScheduleController{Schedule: schedule, PickupLocation: pickupLocation}
}

// GetSchedule -> upcoming fulfillment days and the group on duty
func (sc *ScheduleController) GetSchedule(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Upcoming schedule", sc.Schedule.Upcoming())
}

// GetScheduleICS -> same rotation as a calendar subscription
func (sc *ScheduleController) GetScheduleICS(c *gin.Context) {
	body := services.ScheduleICS(sc.Schedule.Upcoming(), sc.PickupLocation, time.Now())
	c.Header("Content-Disposition", "inline; filename=schedule.ics")
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}
