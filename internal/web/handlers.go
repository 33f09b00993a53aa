package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"romancalc/internal/domain"
	"romancalc/internal/logger"
	"romancalc/internal/roman"
)

type pressRequest struct {
	Action string `json:"action" binding:"required"`
}

type stateResponse struct {
	Session domain.SessionID `json:"session"`
	Display string           `json:"display"`
	State   domain.State     `json:"state"`
}

type toRomanRequest struct {
	Value *int `json:"value" binding:"required"`
}

type toIntRequest struct {
	Numeral string `json:"numeral" binding:"required"`
}

type handlers struct {
	calc domain.CalculatorService
	log  *logger.Logger
}

func newStateResponse(sess domain.Session) stateResponse {
	return stateResponse{Session: sess.ID, Display: sess.State.Display, State: sess.State}
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handlers) state(c *gin.Context) {
	sess, err := h.calc.Get(c.Request.Context(), sessionID(c))
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, newStateResponse(sess))
}

func (h *handlers) press(c *gin.Context) {
	var req pressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	action, err := domain.ParseAction(req.Action)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess, err := h.calc.Press(c.Request.Context(), sessionID(c), action)
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, newStateResponse(sess))
}

func (h *handlers) deleteSession(c *gin.Context) {
	if err := h.calc.Delete(c.Request.Context(), sessionID(c)); err != nil {
		h.internalError(c, err)
		return
	}
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

func (h *handlers) toRoman(c *gin.Context) {
	var req toRomanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	numeral, err := roman.FromInt(*req.Value)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"value": *req.Value, "numeral": numeral})
}

func (h *handlers) toInt(c *gin.Context) {
	var req toIntRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	numeral := strings.ToUpper(strings.TrimSpace(req.Numeral))
	n, err := roman.ToInt(numeral)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, roman.ErrEmpty) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"numeral": numeral, "value": n})
}

func (h *handlers) internalError(c *gin.Context, err error) {
	h.log.Error("request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
