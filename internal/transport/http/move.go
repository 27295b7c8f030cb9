package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
	"github.com/iamasit07/5-in-a-row/backend/internal/service/game"
	"github.com/iamasit07/5-in-a-row/backend/internal/transport/http/middleware"
)

type MoveHandler struct {
	Service *game.Service
}

func NewMoveHandler(svc *game.Service) *MoveHandler {
	return &MoveHandler{Service: svc}
}

type moveRequest struct {
	Board      [][]int `json:"board" binding:"required"`
	Side       string  `json:"side" binding:"required"`
	Suggestion string  `json:"suggestion"`
}

// RequestMove handles POST /api/ai/move
func (h *MoveHandler) RequestMove(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var userID *int64
	if id, ok := c.Get(middleware.ContextUserID); ok {
		if v, ok := id.(int64); ok {
			userID = &v
		}
	}

	result, err := h.Service.RequestMove(c.Request.Context(), game.MoveRequest{
		Board:      req.Board,
		Side:       req.Side,
		Suggestion: req.Suggestion,
		UserID:     userID,
	})
	if err != nil {
		status, msg := errorStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetDecisions handles GET /api/ai/decisions
func (h *MoveHandler) GetDecisions(c *gin.Context) {
	id, ok := c.Get(middleware.ContextUserID)
	userID, isInt := id.(int64)
	if !ok || !isInt {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	decisions, err := h.Service.GetUserDecisions(userID, limit)
	if err != nil {
		log.Printf("[HTTP] Failed to fetch decisions for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch decisions"})
		return
	}
	if decisions == nil {
		c.JSON(http.StatusOK, []any{})
		return
	}
	c.JSON(http.StatusOK, decisions)
}

// GetDecision handles GET /api/ai/decisions/:id
func (h *MoveHandler) GetDecision(c *gin.Context) {
	id, ok := c.Get(middleware.ContextUserID)
	userID, isInt := id.(int64)
	if !ok || !isInt {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	decision, err := h.Service.GetDecision(userID, c.Param("id"))
	if err != nil {
		log.Printf("[HTTP] Failed to fetch decision %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch decision"})
		return
	}
	if decision == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Decision not found"})
		return
	}
	c.JSON(http.StatusOK, decision)
}

type winnerRequest struct {
	Board [][]int `json:"board" binding:"required"`
}

// Winner handles POST /api/board/winner
func (h *MoveHandler) Winner(c *gin.Context) {
	var req winnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	board, err := domain.ParseBoard(req.Board)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	line, ok := domain.WinningLine(board)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"finished": false})
		return
	}
	winner := domain.Side(board[line[0].Row][line[0].Col])
	c.JSON(http.StatusOK, gin.H{"finished": true, "winner": winner.String(), "line": line})
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNoLegalMove):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrInvalidBoard), errors.Is(err, domain.ErrInvalidSide):
		return http.StatusBadRequest, err.Error()
	default:
		log.Printf("[HTTP] Move request failed: %v", err)
		return http.StatusInternalServerError, "Internal server error"
	}
}
