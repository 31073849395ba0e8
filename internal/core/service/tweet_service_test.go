package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/featherpost/social-api/internal/core/domain"
	"github.com/featherpost/social-api/internal/core/ports"
)

// stubTweetRepo mirrors the repository's atomic toggle contract with a
// mutex-guarded flip, so concurrent togglers exercise the same semantics.
type stubTweetRepo struct {
	mu       sync.Mutex
	tweets   map[string]*domain.Tweet
	comments map[string][]domain.Comment
	searches int
}

func newStubTweetRepo() *stubTweetRepo {
	return &stubTweetRepo{
		tweets:   make(map[string]*domain.Tweet),
		comments: make(map[string][]domain.Comment),
	}
}

func (r *stubTweetRepo) CreateTweet(_ context.Context, tweet *domain.Tweet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *tweet
	r.tweets[tweet.ID] = &clone
	return nil
}

func (r *stubTweetRepo) FindTweet(_ context.Context, id string) (*domain.Tweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tweets[id]
	if !ok {
		return nil, domain.ErrTweetNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTweetRepo) ToggleLike(_ context.Context, tweetID, uid string) (domain.LikeAction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tweets[tweetID]
	if !ok {
		return "", domain.ErrTweetNotFound
	}
	for i, liker := range t.Likes {
		if liker == uid {
			t.Likes = append(t.Likes[:i], t.Likes[i+1:]...)
			return domain.LikeRemoved, nil
		}
	}
	t.Likes = append(t.Likes, uid)
	return domain.LikeAdded, nil
}

func (r *stubTweetRepo) FindByHashtag(_ context.Context, tag string, _ int) ([]domain.Tweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.searches++
	var out []domain.Tweet
	for _, t := range r.tweets {
		for _, h := range t.Hashtags {
			if h == tag {
				out = append(out, *t)
				break
			}
		}
	}
	return out, nil
}

func (r *stubTweetRepo) CreateComment(_ context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.comments[comment.TweetID] = append(r.comments[comment.TweetID], *comment)
	return nil
}

func (r *stubTweetRepo) FindComments(_ context.Context, tweetID string, _ int) ([]domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Comment(nil), r.comments[tweetID]...), nil
}

type stubFanout struct {
	mu   sync.Mutex
	tags []string
}

func (f *stubFanout) Enqueue(tag string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tags = append(f.tags, tag)
}

type stubTrending struct{}

func (stubTrending) Bump(context.Context, string) error { return nil }
func (stubTrending) Top(context.Context, int) ([]ports.TrendingTag, error) {
	return []ports.TrendingTag{{Tag: "go", Count: 3}}, nil
}

type stubCache struct {
	mu      sync.Mutex
	entries map[string][]domain.Tweet
	getErr  error
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]domain.Tweet)}
}

func (c *stubCache) Get(_ context.Context, tag string) ([]domain.Tweet, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[tag], nil
}

func (c *stubCache) Put(_ context.Context, tag string, tweets []domain.Tweet) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[tag] = tweets
	return nil
}

func newTweetService() (*TweetService, *stubTweetRepo, *stubFanout, *stubCache) {
	repo := newStubTweetRepo()
	fanout := &stubFanout{}
	cache := newStubCache()
	svc := NewTweetService(repo, fanout, stubTrending{}, cache, zerolog.Nop())
	return svc, repo, fanout, cache
}

func TestTweetService_Post(t *testing.T) {
	svc, repo, fanout, _ := newTweetService()

	tweet, err := svc.Post(context.Background(), "uid-1", "shipping #Go code with #go and #testing")
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if tweet.ID == "" || tweet.Unix == 0 {
		t.Fatalf("tweet missing id or timestamp: %+v", tweet)
	}
	if len(tweet.Hashtags) != 2 || tweet.Hashtags[0] != "go" || tweet.Hashtags[1] != "testing" {
		t.Fatalf("unexpected hashtags: %v", tweet.Hashtags)
	}
	if _, ok := repo.tweets[tweet.ID]; !ok {
		t.Fatalf("tweet not persisted")
	}
	if len(fanout.tags) != 2 {
		t.Fatalf("expected 2 fan-out tags, got %v", fanout.tags)
	}
}

func TestTweetService_Post_EmptyContent(t *testing.T) {
	svc, repo, _, _ := newTweetService()

	if _, err := svc.Post(context.Background(), "uid-1", "   "); !errors.Is(err, domain.ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
	if len(repo.tweets) != 0 {
		t.Fatalf("nothing should be persisted on validation failure")
	}
}

func TestTweetService_ToggleLike_StrictFlip(t *testing.T) {
	svc, _, _, _ := newTweetService()
	tweet, err := svc.Post(context.Background(), "uid-1", "flip me")
	if err != nil {
		t.Fatalf("Post: %v", err)
	}

	want := []domain.LikeAction{domain.LikeAdded, domain.LikeRemoved, domain.LikeAdded}
	for i, expected := range want {
		action, err := svc.ToggleLike(context.Background(), tweet.ID, "uid-2")
		if err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
		if action != expected {
			t.Fatalf("toggle %d = %s, want %s", i, action, expected)
		}
	}

	got, err := svc.Get(context.Background(), tweet.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Likes) != 1 || got.Likes[0] != "uid-2" {
		t.Fatalf("liker set after odd number of toggles: %v", got.Likes)
	}
}

func TestTweetService_ToggleLike_ConcurrentDistinctActors(t *testing.T) {
	svc, _, _, _ := newTweetService()
	tweet, err := svc.Post(context.Background(), "uid-1", "race me")
	if err != nil {
		t.Fatalf("Post: %v", err)
	}

	const n = 32
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := svc.ToggleLike(context.Background(), tweet.ID, fmt.Sprintf("actor-%d", i)); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent toggle: %v", err)
	}

	got, err := svc.Get(context.Background(), tweet.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Likes) != n {
		t.Fatalf("lost update: final liker set has %d entries, want %d", len(got.Likes), n)
	}
}

func TestTweetService_ToggleLike_MissingTweet(t *testing.T) {
	svc, _, _, _ := newTweetService()
	if _, err := svc.ToggleLike(context.Background(), "missing", "uid-1"); !errors.Is(err, domain.ErrTweetNotFound) {
		t.Fatalf("expected ErrTweetNotFound, got %v", err)
	}
}

func TestTweetService_SearchHashtag_CacheHit(t *testing.T) {
	svc, repo, _, cache := newTweetService()
	cached := []domain.Tweet{{ID: "cached", Content: "#go"}}
	cache.entries["go"] = cached

	got, err := svc.SearchHashtag(context.Background(), "#Go")
	if err != nil {
		t.Fatalf("SearchHashtag: %v", err)
	}
	if len(got) != 1 || got[0].ID != "cached" {
		t.Fatalf("expected cached result, got %+v", got)
	}
	if repo.searches != 0 {
		t.Fatalf("repository should not be queried on a cache hit")
	}
}

func TestTweetService_SearchHashtag_CacheFailureFallsThrough(t *testing.T) {
	svc, repo, _, cache := newTweetService()
	cache.getErr = errors.New("redis down")

	if _, err := svc.Post(context.Background(), "uid-1", "all about #go"); err != nil {
		t.Fatalf("Post: %v", err)
	}

	got, err := svc.SearchHashtag(context.Background(), "go")
	if err != nil {
		t.Fatalf("cache failure must not fail the search: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 tweet from repository, got %d", len(got))
	}
	if repo.searches != 1 {
		t.Fatalf("expected repository query, got %d", repo.searches)
	}
}

func TestTweetService_Comment(t *testing.T) {
	svc, _, _, _ := newTweetService()
	tweet, err := svc.Post(context.Background(), "uid-1", "parent")
	if err != nil {
		t.Fatalf("Post: %v", err)
	}

	comment, err := svc.Comment(context.Background(), "uid-2", tweet.ID, "replying with #thoughts")
	if err != nil {
		t.Fatalf("Comment: %v", err)
	}
	if comment.TweetID != tweet.ID {
		t.Fatalf("comment not bound to parent: %+v", comment)
	}

	comments, err := svc.Comments(context.Background(), tweet.ID)
	if err != nil {
		t.Fatalf("Comments: %v", err)
	}
	if len(comments) != 1 || comments[0].ID != comment.ID {
		t.Fatalf("unexpected comments: %+v", comments)
	}
}

func TestTweetService_Comment_MissingParent(t *testing.T) {
	svc, _, _, _ := newTweetService()
	if _, err := svc.Comment(context.Background(), "uid-2", "missing", "hello"); !errors.Is(err, domain.ErrTweetNotFound) {
		t.Fatalf("expected ErrTweetNotFound, got %v", err)
	}
}
