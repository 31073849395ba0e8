package handler

import (
	"github.com/featherpost/social-api/internal/core/domain"
	"github.com/featherpost/social-api/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// Request fields arrive as HTTP headers; the contract middleware has already
// checked presence, these structs check content.

type createAccountRequest struct {
	Username    string `validate:"required,max=32"`
	DisplayName string `validate:"required,max=64"`
	Password    string `validate:"required,min=8,max=100"`
	Email       string `validate:"required,email"`
	Bio         string `validate:"max=500"`
	Age         int    `validate:"gte=0,lte=150"`
}

type createTweetRequest struct {
	Content string `validate:"required,max=280"`
}

type createCommentRequest struct {
	TweetID string `validate:"required"`
	Content string `validate:"required,max=280"`
}

// --- Response types ---

type createAccountResponse struct {
	UID string `json:"uid"`
}

type loginResponse struct {
	Token string          `json:"token"`
	User  *domain.Account `json:"user"`
}

type likeResponse struct {
	Action string `json:"action"`
}

type tweetListResponse struct {
	Tweets []domain.Tweet `json:"tweets"`
}

type commentListResponse struct {
	Comments []domain.Comment `json:"comments"`
}

type trendingResponse struct {
	Hashtags []ports.TrendingTag `json:"hashtags"`
}
