package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/face-liveness/internal/auth"
	"github.com/example/face-liveness/internal/capture"
	"github.com/example/face-liveness/internal/logging"
	"github.com/example/face-liveness/internal/usecase"
)

// MaxUploadSize bounds a single frame upload.
const MaxUploadSize = 5 << 20

var allowedFrameTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
}

type startSessionRequest struct {
	RequiredCount int   `json:"required_count"`
	MinIntervalMs int64 `json:"min_interval_ms"`
	MaxIntervalMs int64 `json:"max_interval_ms"`
}

// RegisterRoutes wires the HTTP handlers to the Gin router.
func RegisterRoutes(router *gin.Engine, uc *usecase.LivenessUseCase, authMiddleware gin.HandlerFunc) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authorized := router.Group("/liveness", authMiddleware)

	authorized.POST("/sessions", func(c *gin.Context) {
		userID, ok := auth.GetUserID(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		var req startSessionRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
				return
			}
		}

		opts := usecase.SessionOptions{
			RequiredCount: req.RequiredCount,
			MinInterval:   time.Duration(req.MinIntervalMs) * time.Millisecond,
			MaxInterval:   time.Duration(req.MaxIntervalMs) * time.Millisecond,
		}
		sessionID, cfg, err := uc.StartSession(c.Request.Context(), userID, opts)
		if err != nil {
			var opErr *logging.OperationError
			if errors.As(err, &opErr) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"session_id":     sessionID,
			"required_count": cfg.RequiredCount,
		})
	})

	authorized.POST("/sessions/:id/frames", func(c *gin.Context) {
		userID, ok := auth.GetUserID(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}
		sessionID := c.Param("id")

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}
		if file.Size > MaxUploadSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds upload limit"})
			return
		}
		if _, ok := allowedFrameTypes[file.Header.Get("Content-Type")]; !ok {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "unsupported image type"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unable to open image"})
			return
		}
		defer src.Close()

		data, err := io.ReadAll(io.LimitReader(src, MaxUploadSize+1))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read image"})
			return
		}
		if len(data) > MaxUploadSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds upload limit"})
			return
		}

		if err := uc.SubmitFrame(c.Request.Context(), userID, sessionID, data); err != nil {
			switch {
			case errors.Is(err, usecase.ErrSessionNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			case errors.Is(err, usecase.ErrSessionFinished):
				c.JSON(http.StatusConflict, gin.H{"error": "session already finished"})
			case errors.Is(err, capture.ErrQueueFull):
				c.JSON(http.StatusTooManyRequests, gin.H{"error": "frame queue full"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusAccepted, gin.H{"session_id": sessionID})
	})

	authorized.GET("/sessions/:id", func(c *gin.Context) {
		userID, ok := auth.GetUserID(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		status, err := uc.GetSession(c.Request.Context(), userID, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusOK, status)
	})

	authorized.DELETE("/sessions/:id", func(c *gin.Context) {
		userID, ok := auth.GetUserID(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		if err := uc.Cancel(c.Request.Context(), userID, c.Param("id")); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"session_id": c.Param("id"), "cancelled": true})
	})

	authorized.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, uc.GetMetricsSummary())
	})
}
