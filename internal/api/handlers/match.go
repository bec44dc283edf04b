package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookkept/matchd/internal/api/dto"
	"github.com/bookkept/matchd/internal/domain/matcher"
	"github.com/bookkept/matchd/internal/model"
)

// MatchHandler answers match queries. Each request carries the query
// record and its full candidate list; nothing is fetched or persisted on
// this side.
type MatchHandler struct {
	matcher *matcher.Matcher
	logger  *slog.Logger
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(m *matcher.Matcher, logger *slog.Logger) *MatchHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MatchHandler{matcher: m, logger: logger}
}

// FindAttachment handles POST /api/match/attachment.
func (h *MatchHandler) FindAttachment(c *gin.Context) {
	var req dto.MatchAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError("invalid request body"))
		return
	}

	tx := req.Transaction.ToModel()
	candidates := make([]*model.Attachment, len(req.Candidates))
	for i, payload := range req.Candidates {
		candidates[i] = payload.ToModel()
	}

	result := h.matcher.FindAttachment(tx, candidates)
	if result == nil {
		h.logger.Debug("no attachment match",
			slog.String("transaction_id", tx.ID),
			slog.Int("candidates", len(candidates)))
		c.JSON(http.StatusOK, dto.NoMatch())
		return
	}

	h.logger.Debug("attachment matched",
		slog.String("transaction_id", tx.ID),
		slog.String("attachment_id", result.Attachment.ID),
		slog.String("method", string(result.Method)),
		slog.Float64("score", result.Score))

	c.JSON(http.StatusOK, dto.MatchResponse{
		Matched: true,
		ID:      result.Attachment.ID,
		Index:   result.Index,
		Method:  string(result.Method),
		Score:   result.Score,
	})
}

// FindTransaction handles POST /api/match/transaction.
func (h *MatchHandler) FindTransaction(c *gin.Context) {
	var req dto.MatchTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError("invalid request body"))
		return
	}

	att := req.Attachment.ToModel()
	candidates := make([]*model.Transaction, len(req.Candidates))
	for i, payload := range req.Candidates {
		candidates[i] = payload.ToModel()
	}

	result := h.matcher.FindTransaction(att, candidates)
	if result == nil {
		h.logger.Debug("no transaction match",
			slog.String("attachment_id", att.ID),
			slog.Int("candidates", len(candidates)))
		c.JSON(http.StatusOK, dto.NoMatch())
		return
	}

	h.logger.Debug("transaction matched",
		slog.String("attachment_id", att.ID),
		slog.String("transaction_id", result.Transaction.ID),
		slog.String("method", string(result.Method)),
		slog.Float64("score", result.Score))

	c.JSON(http.StatusOK, dto.MatchResponse{
		Matched: true,
		ID:      result.Transaction.ID,
		Index:   result.Index,
		Method:  string(result.Method),
		Score:   result.Score,
	})
}
