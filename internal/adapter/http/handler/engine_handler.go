package handler

import (
	"greenfund-demo/internal/adapter/http/dto"
	"greenfund-demo/internal/core/domain"
	"greenfund-demo/pkg/apperror"
	"greenfund-demo/pkg/response"

	"github.com/gin-gonic/gin"
)

// EngineHandler exposes the commands and queries of the session engine
// resolved by middleware.SessionAuth.
type EngineHandler struct{}

// NewEngineHandler creates a new EngineHandler.
func NewEngineHandler() *EngineHandler {
	return &EngineHandler{}
}

// GetWallet handles GET /api/v1/session/wallet.
func (h *EngineHandler) GetWallet(c *gin.Context) {
	engine, ok := requireEngine(c)
	if !ok {
		return
	}
	response.OK(c, dto.NewWalletResponse(engine.WalletState()))
}

// ConnectWallet handles POST /api/v1/session/wallet/connect.
// A started connection answers 202; repeated requests answer 200 with the
// current state.
func (h *EngineHandler) ConnectWallet(c *gin.Context) {
	engine, ok := requireEngine(c)
	if !ok {
		return
	}
	started := engine.RequestConnect()
	resp := dto.ConnectResponse{
		Started: started,
		Wallet:  dto.NewWalletResponse(engine.WalletState()),
	}
	if started {
		response.Accepted(c, resp)
		return
	}
	response.OK(c, resp)
}

// GetView handles GET /api/v1/session/view.
func (h *EngineHandler) GetView(c *gin.Context) {
	engine, ok := requireEngine(c)
	if !ok {
		return
	}
	response.OK(c, dto.NewViewResponse(engine.CurrentView()))
}

// SelectView handles PUT /api/v1/session/view.
func (h *EngineHandler) SelectView(c *gin.Context) {
	engine, ok := requireEngine(c)
	if !ok {
		return
	}

	var req dto.SelectViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	view, err := domain.ParseView(req.View)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	engine.SelectView(view)
	response.OK(c, dto.NewViewResponse(engine.CurrentView()))
}

// GetDraft handles GET /api/v1/session/draft.
func (h *EngineHandler) GetDraft(c *gin.Context) {
	engine, ok := requireEngine(c)
	if !ok {
		return
	}
	response.OK(c, dto.NewDraftResponse(engine.Draft()))
}

// UpdateDraft handles PATCH /api/v1/session/draft.
// Field values are stored verbatim.
func (h *EngineHandler) UpdateDraft(c *gin.Context) {
	engine, ok := requireEngine(c)
	if !ok {
		return
	}

	var req dto.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if req.Amount == nil && req.Description == nil {
		response.Error(c, apperror.Validation("amount or description is required"))
		return
	}

	if req.Amount != nil {
		engine.UpdateDraftAmount(*req.Amount)
	}
	if req.Description != nil {
		engine.UpdateDraftDescription(*req.Description)
	}
	response.OK(c, dto.NewDraftResponse(engine.Draft()))
}

// SubmitDraft handles POST /api/v1/session/draft/submit.
func (h *EngineHandler) SubmitDraft(c *gin.Context) {
	engine, ok := requireEngine(c)
	if !ok {
		return
	}

	record, err := engine.SubmitDraft()
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.SubmitResponse{
		Submitted: true,
		Draft:     dto.NewDraftResponse(engine.Draft()),
	}
	if record != nil {
		loan := dto.NewLoanResponse(*record)
		resp.Loan = &loan
		response.Created(c, resp)
		return
	}
	response.OK(c, resp)
}

// ListLoans handles GET /api/v1/session/loans.
func (h *EngineHandler) ListLoans(c *gin.Context) {
	engine, ok := requireEngine(c)
	if !ok {
		return
	}
	response.OK(c, dto.NewLoanListResponse(engine.ListLoans()))
}

// GetStats handles GET /api/v1/session/stats.
func (h *EngineHandler) GetStats(c *gin.Context) {
	engine, ok := requireEngine(c)
	if !ok {
		return
	}
	response.OK(c, dto.NewStatsResponse(engine.AggregateStats()))
}

// GetImpact handles GET /api/v1/session/impact.
func (h *EngineHandler) GetImpact(c *gin.Context) {
	engine, ok := requireEngine(c)
	if !ok {
		return
	}
	response.OK(c, dto.NewImpactResponse(engine.ImpactStats()))
}

// StatusPresentation handles GET /api/v1/status-presentation/:status.
// The mapping is pure, so no session is needed.
func StatusPresentation(c *gin.Context) {
	status := c.Param("status")
	response.OK(c, dto.NewStatusPresentationResponse(status, domain.PresentStatus(status)))
}
