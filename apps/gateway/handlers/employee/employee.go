package employee

import (
	"context"
	"fmt"
	"net/http"

	employee "staffhub/internal/employee"
	"staffhub/internal/responses"
	"staffhub/internal/structs"
	"staffhub/pkg/logger"
	"staffhub/pkg/reply"
	"staffhub/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Handler interface {
		CreateEmployee(c *gin.Context)
		GetListEmployee(c *gin.Context)
		GetByIDEmployee(c *gin.Context)
		SearchEmployee(c *gin.Context)
		PatchEmployee(c *gin.Context)
		DeleteEmployee(c *gin.Context)
	}
	Params struct {
		fx.In
		Logger          logger.Logger
		EmployeeService employee.Service
	}

	handler struct {
		logger          logger.Logger
		employeeService employee.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:          p.Logger,
		employeeService: p.EmployeeService,
	}
}

func (h *handler) CreateEmployee(c *gin.Context) {
	var (
		response responses.Response
		request  structs.CreateEmployee
		ctx      = c.Request.Context()
	)

	defer func() { reply.Json(c.Writer, response.Status, &response) }()

	err := c.ShouldBindJSON(&request)
	if err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest("malformed request body")
		return
	}

	resp, err := h.employeeService.Create(c, request)
	if err != nil {
		response = h.fail(ctx, "h.employeeService.Create", err)
		return
	}

	response = responses.Created(resp)
}

func (h *handler) GetListEmployee(c *gin.Context) {
	var (
		response responses.Response
		filter   structs.GetListEmployeeRequest
		ctx      = c.Request.Context()

		employmentType = c.Query("employmentType")
		contractType   = c.Query("contractType")
	)

	defer func() { reply.Json(c.Writer, response.Status, &response) }()

	if !utils.StrEmpty(employmentType) {
		et := structs.EmploymentType(employmentType)
		if !et.Valid() {
			response = responses.BadRequest(fmt.Sprintf("invalid employmentType: %s", employmentType))
			return
		}
		filter.EmploymentType = &et
	}
	if !utils.StrEmpty(contractType) {
		ct := structs.ContractType(contractType)
		if !ct.Valid() {
			response = responses.BadRequest(fmt.Sprintf("invalid contractType: %s", contractType))
			return
		}
		filter.ContractType = &ct
	}

	list, err := h.employeeService.GetAll(c, filter)
	if err != nil {
		response = h.fail(ctx, "h.employeeService.GetAll", err)
		return
	}

	response = responses.Success(list)
}

func (h *handler) GetByIDEmployee(c *gin.Context) {
	var (
		response responses.Response
		idStr    = c.Param("id")
		ctx      = c.Request.Context()
	)
	defer func() { reply.Json(c.Writer, response.Status, &response) }()

	id := cast.ToInt64(idStr)
	respond, err := h.employeeService.GetById(c, id)
	if err != nil {
		response = h.fail(ctx, "h.employeeService.GetById", err)
		return
	}

	response = responses.Success(respond)
}

func (h *handler) SearchEmployee(c *gin.Context) {
	var (
		response responses.Response
		keyword  = c.Query("keyword")
		ctx      = c.Request.Context()
	)
	defer func() { reply.Json(c.Writer, response.Status, &response) }()

	list, err := h.employeeService.Search(c, keyword)
	if err != nil {
		response = h.fail(ctx, "h.employeeService.Search", err)
		return
	}

	response = responses.Success(list)
}

func (h *handler) PatchEmployee(c *gin.Context) {
	var (
		response responses.Response
		updates  map[string]interface{}
		idStr    = c.Param("id")
		ctx      = c.Request.Context()
	)

	defer func() { reply.Json(c.Writer, response.Status, &response) }()

	err := c.ShouldBindJSON(&updates)
	if err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest("malformed request body")
		return
	}

	id := cast.ToInt64(idStr)
	resp, err := h.employeeService.Patch(c, id, updates)
	if err != nil {
		response = h.fail(ctx, "h.employeeService.Patch", err)
		return
	}

	response = responses.Success(resp)
}

func (h *handler) DeleteEmployee(c *gin.Context) {
	var (
		response responses.Response
		idStr    = c.Param("id")
		ctx      = c.Request.Context()
	)
	defer func() { reply.Json(c.Writer, response.Status, &response) }()

	id := cast.ToInt64(idStr)
	err := h.employeeService.Delete(c, id)
	if err != nil {
		response = h.fail(ctx, "h.employeeService.Delete", err)
		return
	}

	response = responses.Deleted(fmt.Sprintf("Employee with ID %d deleted successfully.", id))
}

// fail translates a service error into a response, logging server faults as
// errors and client faults as warnings.
func (h *handler) fail(ctx context.Context, op string, err error) responses.Response {
	resp := responses.FromError(err)
	if resp.Status >= http.StatusInternalServerError {
		h.logger.Error(ctx, " err on "+op, zap.Error(err))
	} else {
		h.logger.Warn(ctx, " err on "+op, zap.Error(err))
	}
	return resp
}
