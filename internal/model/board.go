package model

import "time"

// Content constraints for board posts and replies
const (
	MaxTitleLength   = 200
	MaxContentLength = 5000
)

// BoardPost represents a question on the general board.
// Mutable and deletable by its author only.
type BoardPost struct {
	ID             string    `json:"id"`
	AuthorID       string    `json:"author_id"`
	AuthorNickname string    `json:"author_nickname"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	CreatedOn      time.Time `json:"created_on"`
	UpdatedOn      time.Time `json:"updated_on"`
}

// BoardReply represents an answer attached to a board post
type BoardReply struct {
	ID             string    `json:"id"`
	PostID         string    `json:"post_id"`
	AuthorID       string    `json:"author_id"`
	AuthorNickname string    `json:"author_nickname"`
	Content        string    `json:"content"`
	CreatedOn      time.Time `json:"created_on"`
	UpdatedOn      time.Time `json:"updated_on"`
}

// BoardPostDetail is a post together with its replies
type BoardPostDetail struct {
	Post    *BoardPost    `json:"post"`
	Replies []*BoardReply `json:"replies"`
}

// BoardPage is the paginated board listing payload
type BoardPage struct {
	TotalPage   int          `json:"totalPage"`
	NowPage     int          `json:"nowPage"`
	NowPageSize int          `json:"nowPageSize"`
	Posts       []*BoardPost `json:"posts"`
}

// BoardUploadRequest creates a new board post
type BoardUploadRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// BoardUpdateRequest edits an existing board post
type BoardUpdateRequest struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// BoardReplyRequest creates a reply on a post
type BoardReplyRequest struct {
	PostID  string `json:"post_id"`
	Content string `json:"content"`
}

// BoardReplyUpdateRequest edits an existing reply
type BoardReplyUpdateRequest struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}
