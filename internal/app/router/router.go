// Package router assembles the gin route table.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "mockflow_backend/internal/feature/auth/transport/handler"
	candlehandler "mockflow_backend/internal/feature/candles/transport/handler"
	cataloghandler "mockflow_backend/internal/feature/catalog/transport/handler"
	platformhandler "mockflow_backend/internal/platform/http/handler"
	jwtmw "mockflow_backend/internal/platform/jwt"
)

// NewRouter は公開ルートと認証必須ルートを組み立てます。
func NewRouter(token *authhandler.TokenHandler, candles *candlehandler.CandlesHandler,
	symbol *cataloghandler.SymbolHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	// APIキーとJWTの交換
	r.POST("/auth/token", token.IssueToken)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	auth := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth.Use(jwtmw.AuthRequired())
	{
		auth.GET("/candles/:symbol", candles.GetCandlesHandler)
		auth.GET("/symbols", symbol.List)
	}

	return r
}
