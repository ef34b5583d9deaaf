package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"whist/internal/bots"
)

// Register mounts the service routes on e.
func Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/ws", echo.WrapHandler(http.HandlerFunc(WSHandler)))
	e.POST("/choose", ChooseHandler)
	e.POST("/simulate", SimulateHandler)
}

func ChooseHandler(c echo.Context) error {
	var req ChooseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorView{Code: "bad_request", Message: "invalid json"})
	}
	resp, errView := chooseCard(bots.NewSimple(), req)
	if errView != nil {
		status := http.StatusBadRequest
		if errView.Code == "choose_failed" {
			status = http.StatusUnprocessableEntity
		}
		return c.JSON(status, errView)
	}
	return c.JSON(http.StatusOK, resp)
}

func SimulateHandler(c echo.Context) error {
	var req SimulateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorView{Code: "bad_request", Message: "invalid json"})
	}
	_, view, errView := runSimulation(req)
	if errView != nil {
		status := http.StatusBadRequest
		if errView.Code == "sim_failed" {
			status = http.StatusInternalServerError
		}
		return c.JSON(status, errView)
	}
	return c.JSON(http.StatusOK, view)
}
