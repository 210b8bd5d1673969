package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gossipboard/gossip-client/internal/model"
	"github.com/gossipboard/gossip-client/internal/view"
)

const timeLayout = "2006-01-02 15:04"

// mine marks content the signed-in user may edit and delete.
func mine(ok bool) string {
	if !ok {
		return ""
	}
	return " " + styles.Mine.Render("(yours: edit/delete available)")
}

func renderFeed(w io.Writer, snap view.FeedSnapshot, canMutate func(model.Owned) bool) {
	if snap.Search != "" {
		fmt.Fprintln(w, styles.Muted.Render(fmt.Sprintf("Results for %q", snap.Search)))
	}
	if msg := snap.EmptyMessage(); msg != "" {
		fmt.Fprintln(w, styles.Muted.Render(msg))
		return
	}
	for _, p := range snap.Posts {
		head := fmt.Sprintf("#%d %s %s", p.ID, styles.Title.Render(p.Title), styles.Topic.Render("["+p.TopicTitle()+"]"))
		meta := styles.Muted.Render(fmt.Sprintf("by %s · %s", authorName(p.AuthorName), p.CreatedAt.Local().Format(timeLayout)))
		body := head + "\n" + meta + mine(canMutate(p)) + "\n" + excerpt(p.Body, 140)
		fmt.Fprintln(w, styles.Card.Render(body))
	}
}

func renderPost(w io.Writer, snap view.PostSnapshot, canMutate func(model.Owned) bool) {
	p := snap.Post
	fmt.Fprintln(w, styles.Title.Render(p.Title)+" "+styles.Topic.Render("["+p.TopicTitle()+"]"))
	fmt.Fprintln(w, styles.Muted.Render(fmt.Sprintf("#%d by %s · %s", p.ID, authorName(p.AuthorName), p.CreatedAt.Local().Format(timeLayout)))+mine(canMutate(p)))
	fmt.Fprintln(w)
	fmt.Fprintln(w, p.Body)
	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Author.Render(fmt.Sprintf("Comments (%d)", len(snap.Comments))))
	for _, c := range snap.Comments {
		line := fmt.Sprintf("#%d %s: %s", c.ID, styles.Author.Render(authorName(c.AuthorName)), c.Body)
		fmt.Fprintln(w, styles.Comment.Render(line+mine(canMutate(c))))
	}
}

func renderTopics(w io.Writer, snap view.TopicsSnapshot) {
	for _, t := range snap.Topics {
		line := fmt.Sprintf("#%d %s %s", t.ID, styles.Topic.Render(t.Title), styles.Muted.Render("("+t.Slug+")"))
		if t.Description != "" {
			line += " " + styles.Muted.Render(t.Description)
		}
		fmt.Fprintln(w, line)
	}
}

func authorName(name string) string {
	if name == "" {
		return "unknown"
	}
	return name
}

func excerpt(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
