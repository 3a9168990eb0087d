package user

import (
	"context"
	"net/http"
	"slices"
	"sort"
	"strings"

	"github.com/Ziyadh-ali/workwave-client-sub001/internal/employeeform"
	employeeformerrors "github.com/Ziyadh-ali/workwave-client-sub001/internal/employeeform/errors"
	"github.com/Ziyadh-ali/workwave-client-sub001/internal/shared/apperror"
	"github.com/Ziyadh-ali/workwave-client-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("user.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.handler")
	}
	return &Handler{svc: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := response.FromError(c, err)
	h.logger.Warn("user request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
}

// GetForm returns what the add-user modal renders when it opens.
func (h *Handler) GetForm(c *gin.Context) {
	response.Success(c, http.StatusOK, FormResponse{
		Values:  employeeform.NewFormValues(),
		Options: employeeform.Options(),
	}, nil)
}

// ValidateForm backs inline validation: the whole form, or a single field on blur.
func (h *Handler) ValidateForm(c *gin.Context) {
	var req ValidateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http validate form bind failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	values := *req.Values
	values.Salary = values.Salary.Clamp()

	var result employeeform.ValidationResult
	if req.Field != "" {
		field := employeeform.Field(req.Field)
		msg, ok := employeeform.ValidateField(values, field)
		if !ok {
			h.writeServiceError(c, employeeformerrors.ErrUnknownField)
			return
		}
		result = employeeform.ValidationResult{}
		if msg != "" {
			result[field] = msg
		}
	} else {
		result = employeeform.Validate(values)
	}

	response.Success(c, http.StatusOK, ValidateFormResponse{
		Valid:  result.Valid(),
		Errors: result.ToMap(),
	}, nil)
}

// Create submits the add-user form. The form controller decides whether the
// payload reaches the service; invalid input comes back as 422 with per-field messages.
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	var values employeeform.FormValues
	if err := c.ShouldBindJSON(&values); err != nil {
		h.logger.Warn("http create user bind failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	var created UserResponse
	form := employeeform.NewController(employeeform.AddUserFunc(func(ctx context.Context, p employeeform.Payload) error {
		resp, err := h.svc.AddUser(ctx, p)
		if err != nil {
			return err
		}
		created = resp
		return nil
	}), h.logger)
	form.Load(values)

	if _, err := form.Submit(ctx); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	q := strings.TrimSpace(strings.ToLower(c.Query("q")))
	if q != "" {
		filtered := make([]UserResponse, 0, len(resp))
		for _, u := range resp {
			if strings.Contains(strings.ToLower(u.FullName), q) || strings.Contains(strings.ToLower(u.Email), q) {
				filtered = append(filtered, u)
			}
		}
		resp = filtered
	}

	sortBy := strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_by", "created")))
	sortDir := strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_dir", "asc")))
	if sortDir != "desc" {
		sortDir = "asc"
	}
	less := func(a, b UserResponse) bool {
		switch sortBy {
		case "name":
			return strings.ToLower(a.FullName) < strings.ToLower(b.FullName)
		case "email":
			return strings.ToLower(a.Email) < strings.ToLower(b.Email)
		case "salary":
			return a.Salary < b.Salary
		default:
			return a.CreatedAt < b.CreatedAt
		}
	}
	// GetAll returns creation order, so a stable ascending sort keeps ties
	// in that order and reversing it gives a true descending order.
	sort.SliceStable(resp, func(i, j int) bool {
		return less(resp[i], resp[j])
	})
	if sortDir == "desc" {
		slices.Reverse(resp)
	}

	page, pageSize := response.PageParams(c)
	items, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) GetById(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http get user by id", zap.String("user_id", id))

	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
