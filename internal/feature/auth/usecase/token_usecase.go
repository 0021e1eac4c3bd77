// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// TokenSubject は発行されるトークンのサブジェクトです。
// このサービスのAPIキーは運用者単位で1つのため、固定値になります。
const TokenSubject = "operator"

// ErrInvalidAPIKey はAPIキーが一致しない場合のエラーです。
var ErrInvalidAPIKey = errors.New("invalid api key")

// ErrAuthNotConfigured はAPIキーのハッシュが設定されていない場合のエラーです。
var ErrAuthNotConfigured = errors.New("api key hash is not configured")

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたサブジェクトの署名済みJWTトークンを生成します。
	GenerateToken(subject string) (string, error)
}

// tokenUsecase はAPIキーとJWTトークンの交換ロジックを実装します。
type tokenUsecase struct {
	keyHash      string // 運用者APIキーのbcryptハッシュ
	jwtGenerator JWTGenerator
}

// NewTokenUsecase はtokenUsecaseの新しいインスタンスを生成します。
// keyHash には運用者APIキーのbcryptハッシュを渡します。
func NewTokenUsecase(keyHash string, jwtGenerator JWTGenerator) *tokenUsecase {
	return &tokenUsecase{
		keyHash:      keyHash,
		jwtGenerator: jwtGenerator,
	}
}

// IssueToken はAPIキーを検証し、成功時に署名済みJWTトークンを返します。
// 平文キーはどこにも保存せず、bcryptハッシュとの比較のみを行います。
func (u *tokenUsecase) IssueToken(ctx context.Context, apiKey string) (string, error) {
	if u.keyHash == "" {
		return "", ErrAuthNotConfigured
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.keyHash), []byte(apiKey)); err != nil {
		return "", ErrInvalidAPIKey
	}

	token, err := u.jwtGenerator.GenerateToken(TokenSubject)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}
