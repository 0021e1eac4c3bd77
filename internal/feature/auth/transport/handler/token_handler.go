// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"mockflow_backend/internal/api"
)

// TokenUsecase はトークン発行のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type TokenUsecase interface {
	// IssueToken はAPIキーを検証し、成功時にJWTトークンを返します。
	IssueToken(ctx context.Context, apiKey string) (string, error)
}

// TokenHandler はトークン発行のHTTPリクエストを処理します。
type TokenHandler struct {
	auth TokenUsecase
}

// NewTokenHandler はTokenHandlerの新しいインスタンスを生成します。
func NewTokenHandler(auth TokenUsecase) *TokenHandler {
	return &TokenHandler{auth: auth}
}

// IssueToken はAPIキーとJWTトークンの交換エンドポイントを処理します。
// - リクエストJSONをTokenRequestにバインド
// - バリデーションエラー時は400を返却
// - キー不一致時は401を返却
// - 成功時はJWTトークン付きで200を返却
func (h *TokenHandler) IssueToken(c *gin.Context) {
	var req api.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("token request validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	token, err := h.auth.IssueToken(c.Request.Context(), req.APIKey)
	if err != nil {
		// キー列挙を防止するため、実際のエラーを公開しない
		slog.Warn("token issue failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid api key"})
		return
	}
	slog.Info("token issued", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}
