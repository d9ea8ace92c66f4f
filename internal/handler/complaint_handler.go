package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Likhithanimmalapudi/Swachatha-SVECW/internal/models"
	"github.com/Likhithanimmalapudi/Swachatha-SVECW/internal/services"
)

type ComplaintHandler struct {
	svc *services.ComplaintService
}

func NewComplaintHandler(svc *services.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{svc: svc}
}

// Submit accepts a multipart form with the complaint fields and an optional
// "image" file. The whole file is buffered and stored inline with the
// complaint document.
func (h *ComplaintHandler) Submit(c *gin.Context) {
	complaint := &models.Complaint{
		Username:    c.PostForm("username"),
		Text:        c.PostForm("complaint"),
		Date:        c.PostForm("date"),
		Location:    c.PostForm("location"),
		SubLocation: c.PostForm("sublocation"),
		RoomNo:      c.PostForm("roomno"),
	}

	file, header, err := c.Request.FormFile("image")
	if err == nil {
		defer file.Close()
		data, readErr := io.ReadAll(file)
		if readErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read image"})
			return
		}
		complaint.Image = &models.ComplaintImage{
			Data:        data,
			ContentType: header.Header.Get("Content-Type"),
		}
	} else if !errors.Is(err, http.ErrMissingFile) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
		return
	}

	if err := h.svc.Submit(c.Request.Context(), complaint); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not submit complaint"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Complaint submitted successfully"})
}

func (h *ComplaintHandler) GetComplaints(c *gin.Context) {
	views, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch complaints"})
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	date := c.Param("date")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.svc.UpdateStatus(c.Request.Context(), date, models.ComplaintStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, models.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully"})
}

func (h *ComplaintHandler) GetStatusHistory(c *gin.Context) {
	records, err := h.svc.History(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch status history"})
		return
	}
	c.JSON(http.StatusOK, records)
}
