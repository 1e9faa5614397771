package notes

import (
	"codeberg.org/simpleapi/server/notes"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, service *notes.Service) {
	notesGroup := router.Group("/notes")
	{
		notesGroup.POST("", CreateNoteHandler(service))
		notesGroup.GET("", ListNotesHandler(service))
		notesGroup.GET("/:id", GetNoteHandler(service))
		notesGroup.PUT("/:id", UpdateNoteHandler(service))
		notesGroup.DELETE("/:id", DeleteNoteHandler(service))
	}
}
