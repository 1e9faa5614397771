package notes

import (
	"net/http"

	"codeberg.org/simpleapi/server/notes"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateNoteHandler creates a new note
// @Summary Create a note
// @Tags Notes
// @Accept json
// @Produce json
// @Param body body notes.CreateNoteRequest true "note to create"
// @Success 201 {object} notes.Note
// @Failure 400 {object} notes.ErrorResponse
// @Router /api/v1/notes [post]
func CreateNoteHandler(service *notes.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req notes.CreateNoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, bindErrorResponse(err))
			return
		}

		if err := req.Normalize(); err != nil {
			c.JSON(http.StatusBadRequest, bindErrorResponse(err))
			return
		}

		note, err := service.CreateNote(c.Request.Context(), req.Title, req.Content)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create note"})
			return
		}

		c.JSON(http.StatusCreated, note)
	}
}

// ListNotesHandler lists all notes
// @Summary List notes
// @Tags Notes
// @Produce json
// @Success 200 {array} notes.Note
// @Router /api/v1/notes [get]
func ListNotesHandler(service *notes.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := service.GetAllNotes(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notes"})
			return
		}

		c.JSON(http.StatusOK, all)
	}
}

// GetNoteHandler gets a single note by ID
// @Summary Get a note
// @Tags Notes
// @Produce json
// @Param id path string true "note ID (UUID)"
// @Success 200 {object} notes.Note
// @Failure 400 {object} notes.ErrorResponse
// @Failure 404 {object} notes.ErrorResponse
// @Router /api/v1/notes/{id} [get]
func GetNoteHandler(service *notes.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		noteID := c.Param("id")
		if _, err := uuid.Parse(noteID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid UUID format: " + noteID})
			return
		}

		note, err := service.GetNote(c.Request.Context(), noteID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
			return
		}

		c.JSON(http.StatusOK, note)
	}
}

// UpdateNoteHandler patches a note
// @Summary Update a note
// @Tags Notes
// @Accept json
// @Produce json
// @Param id path string true "note ID (UUID)"
// @Param body body notes.UpdateNoteRequest true "fields to update"
// @Success 200 {object} notes.Note
// @Failure 400 {object} notes.ErrorResponse
// @Failure 404 {object} notes.ErrorResponse
// @Router /api/v1/notes/{id} [put]
func UpdateNoteHandler(service *notes.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		noteID := c.Param("id")
		if _, err := uuid.Parse(noteID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid UUID format: " + noteID})
			return
		}

		var req notes.UpdateNoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, bindErrorResponse(err))
			return
		}

		if err := req.Normalize(); err != nil {
			c.JSON(http.StatusBadRequest, bindErrorResponse(err))
			return
		}

		note, err := service.UpdateNote(c.Request.Context(), noteID, req)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
			return
		}

		c.JSON(http.StatusOK, note)
	}
}

// DeleteNoteHandler deletes a note
// @Summary Delete a note
// @Tags Notes
// @Produce json
// @Param id path string true "note ID (UUID)"
// @Success 200 {object} notes.MessageResponse
// @Failure 400 {object} notes.ErrorResponse
// @Failure 404 {object} notes.ErrorResponse
// @Router /api/v1/notes/{id} [delete]
func DeleteNoteHandler(service *notes.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		noteID := c.Param("id")
		if _, err := uuid.Parse(noteID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid UUID format: " + noteID})
			return
		}

		if err := service.DeleteNote(c.Request.Context(), noteID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "Note deleted successfully"})
	}
}
