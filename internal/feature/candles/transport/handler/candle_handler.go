// Package handler はcandlesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"mockflow_backend/internal/api"
	"mockflow_backend/internal/feature/candles/domain/entity"
	"mockflow_backend/internal/feature/candles/transport/http/dto"
	"mockflow_backend/internal/feature/candles/usecase"
)

// timeLayout はレスポンスとクエリパラメータの日時フォーマットです。
const timeLayout = "2006-01-02 15:04:05"

// CandlesUsecase はロウソク足系列生成のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CandlesUsecase interface {
	GetSeries(ctx context.Context, p usecase.GenerateParams) ([]entity.Candle, error)
}

// CandlesHandler はロウソク足系列のHTTPリクエストを処理します。
type CandlesHandler struct {
	uc CandlesUsecase
}

// NewCandlesHandler は指定されたusecaseでCandlesHandlerの新しいインスタンスを生成します。
func NewCandlesHandler(uc CandlesUsecase) *CandlesHandler {
	return &CandlesHandler{uc: uc}
}

// GetCandlesHandler は銘柄シンボルと生成パラメータを受け取り、
// 合成されたロウソク足系列をJSONで返します。
//
// エンドポイント例:
// GET /candles/:symbol?timeframe=1h&limit=100&scenario=bull
// GET /candles/:symbol?timeframe=1d&start=2024-01-01&end=2024-03-01
func (h *CandlesHandler) GetCandlesHandler(c *gin.Context) {
	symbol := c.Param("symbol")

	p := usecase.GenerateParams{
		Symbol:    symbol,
		Timeframe: c.DefaultQuery("timeframe", usecase.DefaultTimeframe),
		Scenario:  c.DefaultQuery("scenario", entity.ScenarioAuto),
	}

	// 文字列を整数に変換（不正値はデフォルトにフォールバック）
	if s := c.Query("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			p.Limit = v
		}
	}
	if s := c.Query("days"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "days must be a positive integer"})
			return
		}
		p.Days = v
	}

	// 日付範囲（任意）をパース
	var parseErr bool
	p.Start, parseErr = parseDateQuery(c, "start")
	if parseErr {
		return
	}
	p.End, parseErr = parseDateQuery(c, "end")
	if parseErr {
		return
	}

	candles, err := h.uc.GetSeries(c.Request.Context(), p)
	if err != nil {
		// ユースケースのエラーはすべてバリデーション起因で、生成前に返される
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	// データをフォーマット
	out := make([]dto.CandleResponse, 0, len(candles))
	for _, x := range candles {
		out = append(out, dto.CandleResponse{
			Time:   x.Time.UTC().Format(timeLayout),
			Open:   x.Open,
			High:   x.High,
			Low:    x.Low,
			Close:  x.Close,
			Volume: x.Volume,
		})
	}

	c.JSON(http.StatusOK, out)
}

// parseDateQuery は日時クエリパラメータをパースします。
// 不正なフォーマットの場合は400を返し、第2戻り値でtrueを返します。
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	s := c.Query(name)
	if s == "" {
		return nil, false
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid " + name + " date"})
			return nil, true
		}
	}
	return &t, false
}
