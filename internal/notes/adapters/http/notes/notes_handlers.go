// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/notes/adapters/http/dto"
	"gonotes/internal/notes/adapters/http/httperr"
	"gonotes/internal/notes/adapters/http/middleware"
	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/domain/services"
	"gonotes/internal/notes/ports/api"
	"gonotes/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerCreateNote = "handling create note request"
	LogHandlerGetNote    = "handling get note request"
	LogHandlerListNotes  = "handling list notes request"
	LogHandlerUpdateNote = "handling update note request"
	LogHandlerDeleteNote = "handling delete note request"

	ErrMsgInvalidNoteID      = "invalid note id"
	ErrMsgInvalidRequestBody = "invalid request body"

	paramNoteID = "id"
)

// OperationRecorder учитывает успешные операции над заметками.
type OperationRecorder interface {
	NoteOperation(op string)
}

type noopRecorder struct{}

func (noopRecorder) NoteOperation(string) {}

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	noteUseCase api.NoteUseCase
	recorder    OperationRecorder
}

// NewHandler создает новый экземпляр обработчика заметок. recorder может быть nil.
func NewHandler(noteUseCase api.NoteUseCase, recorder OperationRecorder) *Handler {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Handler{noteUseCase: noteUseCase, recorder: recorder}
}

func ownerID(c fiber.Ctx) (int64, error) {
	user, ok := middleware.Principal(c)
	if !ok {
		return 0, services.ErrInvalidJWTToken
	}
	return user.ID, nil
}

func noteID(c fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params(paramNoteID), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s: %w", ErrMsgInvalidNoteID, entities.ErrInvalidNoteID)
	}
	return id, nil
}

// CreateNote обрабатывает POST /notes/.
func (h *Handler) CreateNote(c fiber.Ctx) error {
	requestCtx := middleware.RequestContext(c)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(requestCtx, LogHandlerCreateNote)

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req dto.CreateNoteRequest
	if err := c.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return fmt.Errorf("%w: %w", httperr.ErrMalformedBody, err)
	}

	note, err := h.noteUseCase.CreateNote(requestCtx, owner, req.Draft())
	if err != nil {
		return err
	}

	h.recorder.NoteOperation("create")
	return c.Status(fiber.StatusCreated).JSON(dto.NewNoteResponse(note))
}

// ListNotes обрабатывает GET /notes/.
func (h *Handler) ListNotes(c fiber.Ctx) error {
	requestCtx := middleware.RequestContext(c)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerListNotes, zap.String("handler", "Handler.ListNotes"))

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	notes, err := h.noteUseCase.ListNotes(requestCtx, owner)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewNoteListResponse(notes))
}

// GetNote обрабатывает GET /notes/:id.
func (h *Handler) GetNote(c fiber.Ctx) error {
	requestCtx := middleware.RequestContext(c)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerGetNote, zap.String("handler", "Handler.GetNote"))

	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := noteID(c)
	if err != nil {
		return err
	}

	note, err := h.noteUseCase.GetNote(requestCtx, owner, id)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewNoteResponse(note))
}

// UpdateNote обрабатывает PUT /notes/:id.
func (h *Handler) UpdateNote(c fiber.Ctx) error {
	requestCtx := middleware.RequestContext(c)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UpdateNote"))
	log.Debug(requestCtx, LogHandlerUpdateNote)

	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := noteID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := c.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return fmt.Errorf("%w: %w", httperr.ErrMalformedBody, err)
	}

	note, err := h.noteUseCase.UpdateNote(requestCtx, owner, id, req.Patch())
	if err != nil {
		return err
	}

	h.recorder.NoteOperation("update")
	return c.JSON(dto.NewNoteResponse(note))
}

// DeleteNote обрабатывает DELETE /notes/:id.
func (h *Handler) DeleteNote(c fiber.Ctx) error {
	requestCtx := middleware.RequestContext(c)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerDeleteNote, zap.String("handler", "Handler.DeleteNote"))

	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := noteID(c)
	if err != nil {
		return err
	}

	if err := h.noteUseCase.DeleteNote(requestCtx, owner, id); err != nil {
		return err
	}

	h.recorder.NoteOperation("delete")
	return c.SendStatus(fiber.StatusNoContent)
}
