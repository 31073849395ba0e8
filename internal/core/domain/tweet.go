package domain

// Tweet is a post. Owner holds the author's public UID. Likes holds the
// public UIDs of accounts that currently like the tweet; membership is
// unique and insertion order carries no meaning. Hashtags are derived from
// the content once at creation and never recomputed.
type Tweet struct {
	ID       string   `json:"id" bson:"id"`
	Owner    string   `json:"owner" bson:"owner"`
	Content  string   `json:"content" bson:"content"`
	Likes    []string `json:"likes" bson:"likes"`
	Unix     int64    `json:"unix" bson:"unix"`
	Hashtags []string `json:"hashtags" bson:"hashtags"`
}

// Comment has the same shape as a Tweet plus a reference to the parent
// tweet's identifier. The same liker-set invariants apply.
type Comment struct {
	ID       string   `json:"id" bson:"id"`
	Owner    string   `json:"owner" bson:"owner"`
	Content  string   `json:"content" bson:"content"`
	Likes    []string `json:"likes" bson:"likes"`
	Unix     int64    `json:"unix" bson:"unix"`
	Hashtags []string `json:"hashtags" bson:"hashtags"`
	TweetID  string   `json:"tweet" bson:"tweet"`
}

// LikeAction reports which side of the like toggle was taken.
type LikeAction string

const (
	LikeAdded   LikeAction = "added"
	LikeRemoved LikeAction = "removed"
)
