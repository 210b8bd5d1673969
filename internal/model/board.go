// Package model holds the board entities shared by the gateway, the views
// and the development backend.
package model

import "time"

// DefaultTopicTitle is shown for posts whose topic reference is missing.
const DefaultTopicTitle = "General"

// Owned is implemented by content that has a single author.
type Owned interface {
	OwnerID() int64
}

// Topic groups posts. Topics may be created, renamed and deleted by any
// authenticated user; the backend refuses to delete a topic that still has
// posts.
type Topic struct {
	ID          int64
	Title       string
	Slug        string
	Description string
}

// TopicRef is the part of a topic embedded in a post.
type TopicRef struct {
	ID    int64
	Title string
}

// Post is a titled message within a topic. Only its author may change it.
type Post struct {
	ID         int64
	Title      string
	Body       string
	Topic      *TopicRef
	AuthorID   int64
	AuthorName string
	Comments   []Comment
	CreatedAt  time.Time
}

// OwnerID implements Owned.
func (p Post) OwnerID() int64 { return p.AuthorID }

// TopicTitle returns the post's topic title, or DefaultTopicTitle when the
// backend returned the post without a topic.
func (p Post) TopicTitle() string {
	if p.Topic == nil || p.Topic.Title == "" {
		return DefaultTopicTitle
	}
	return p.Topic.Title
}

// Comment is a reply attached to a post.
type Comment struct {
	ID         int64
	Body       string
	PostID     int64
	AuthorID   int64
	AuthorName string
	CreatedAt  time.Time
}

// OwnerID implements Owned.
func (c Comment) OwnerID() int64 { return c.AuthorID }
