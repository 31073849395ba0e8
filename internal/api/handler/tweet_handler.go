package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/featherpost/social-api/internal/api/metrics"
	"github.com/featherpost/social-api/internal/core/ports"
)

const trendingLimit = 10

// TweetHandler handles tweet, like, comment, and hashtag operations.
type TweetHandler struct {
	tweets ports.TweetService
}

func NewTweetHandler(tweets ports.TweetService) *TweetHandler {
	return &TweetHandler{tweets: tweets}
}

// Create posts a new tweet owned by the authenticated caller.
//
// @Summary      Create a tweet
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        content  header    string  true  "Tweet text (hashtags are derived from it)"
// @Success      200  {object}  domain.Tweet
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/tweets [post]
func (h *TweetHandler) Create(c echo.Context) error {
	_, uid, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	req := createTweetRequest{Content: c.Request().Header.Get("content")}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tweet, err := h.tweets.Post(c.Request().Context(), uid, req.Content)
	if err != nil {
		return err
	}

	metrics.TweetsCreatedTotal.WithLabelValues("tweet").Inc()
	return c.JSON(http.StatusOK, tweet)
}

// Get returns a single tweet.
//
// @Summary      Get a tweet
// @Tags         tweets
// @Produce      json
// @Param        id   path      string  true  "Tweet identifier"
// @Success      200  {object}  domain.Tweet
// @Failure      404  {object}  errorResponse
// @Router       /v1/tweets/{id} [get]
func (h *TweetHandler) Get(c echo.Context) error {
	tweet, err := h.tweets.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tweet)
}

// Like flips the caller's membership in a tweet's liker set.
//
// @Summary      Toggle a like
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        tweet  header    string  true  "Tweet identifier"
// @Success      200  {object}  likeResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/tweets/like [post]
func (h *TweetHandler) Like(c echo.Context) error {
	_, uid, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	action, err := h.tweets.ToggleLike(c.Request().Context(), c.Request().Header.Get("tweet"), uid)
	if err != nil {
		return err
	}

	metrics.LikesToggledTotal.WithLabelValues(string(action)).Inc()
	return c.JSON(http.StatusOK, likeResponse{Action: string(action)})
}

// Search returns recent tweets carrying a hashtag, newest first.
//
// @Summary      Search tweets by hashtag
// @Tags         hashtags
// @Produce      json
// @Param        tag  path      string  true  "Hashtag, without the leading #"
// @Success      200  {object}  tweetListResponse
// @Router       /v1/hashtags/{tag} [get]
func (h *TweetHandler) Search(c echo.Context) error {
	tweets, err := h.tweets.SearchHashtag(c.Request().Context(), c.Param("tag"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tweetListResponse{Tweets: tweets})
}

// Trending returns the most used hashtags.
//
// @Summary      Trending hashtags
// @Tags         hashtags
// @Produce      json
// @Success      200  {object}  trendingResponse
// @Router       /v1/hashtags [get]
func (h *TweetHandler) Trending(c echo.Context) error {
	tags, err := h.tweets.Trending(c.Request().Context(), trendingLimit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trendingResponse{Hashtags: tags})
}

// Comment posts a comment under an existing tweet.
//
// @Summary      Create a comment
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        tweet    header    string  true  "Parent tweet identifier"
// @Param        content  header    string  true  "Comment text"
// @Success      200  {object}  domain.Comment
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/comments [post]
func (h *TweetHandler) Comment(c echo.Context) error {
	_, uid, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	headers := c.Request().Header
	req := createCommentRequest{
		TweetID: headers.Get("tweet"),
		Content: headers.Get("content"),
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.tweets.Comment(c.Request().Context(), uid, req.TweetID, req.Content)
	if err != nil {
		return err
	}

	metrics.TweetsCreatedTotal.WithLabelValues("comment").Inc()
	return c.JSON(http.StatusOK, comment)
}

// Comments lists the comments under a tweet, newest first.
//
// @Summary      List comments
// @Tags         tweets
// @Produce      json
// @Param        id   path      string  true  "Tweet identifier"
// @Success      200  {object}  commentListResponse
// @Router       /v1/tweets/{id}/comments [get]
func (h *TweetHandler) Comments(c echo.Context) error {
	comments, err := h.tweets.Comments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, commentListResponse{Comments: comments})
}
