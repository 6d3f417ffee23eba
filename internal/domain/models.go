// Package domain defines the persistence models for topics, users, articles,
// and comments, plus the read projections returned by the articles queries.
// These types are mapped with GORM and form the core data layer of the news
// API.
package domain

import "time"

// DefaultArticleImgURL is substituted when a new article omits article_img_url.
const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Topic is a named category that articles belong to.
type Topic struct {
	Slug        string `json:"slug"        gorm:"column:slug;type:varchar(64);primaryKey"`
	Description string `json:"description" gorm:"column:description;type:text;not null"`
}

// TableName returns the database table name for Topic.
func (Topic) TableName() string { return "topics" }

// User is an article or comment author.
type User struct {
	Username  string `json:"username"   gorm:"column:username;type:varchar(64);primaryKey"`
	Name      string `json:"name"       gorm:"column:name;type:varchar(255);not null"`
	AvatarURL string `json:"avatar_url" gorm:"column:avatar_url;type:text"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Article is a full article row as stored, including its body.
//
// Fields:
//   - ArticleID: integer primary key assigned by the store.
//   - Topic: foreign key to topics.slug.
//   - Author: foreign key to users.username.
//   - Votes: signed counter, changed only through vote deltas.
//   - ArticleImgURL: cover image; DefaultArticleImgURL when not supplied.
type Article struct {
	ArticleID     int64     `json:"article_id"      gorm:"column:article_id;primaryKey;autoIncrement"`
	Title         string    `json:"title"           gorm:"column:title;type:varchar(255);not null"`
	Topic         string    `json:"topic"           gorm:"column:topic;type:varchar(64);not null;index:idx_articles_topic"`
	Author        string    `json:"author"          gorm:"column:author;type:varchar(64);not null;index:idx_articles_author"`
	Body          string    `json:"body"            gorm:"column:body;type:text;not null"`
	CreatedAt     time.Time `json:"created_at"      gorm:"column:created_at;not null;index:idx_articles_created"`
	Votes         int       `json:"votes"           gorm:"column:votes;not null;default:0"`
	ArticleImgURL string    `json:"article_img_url" gorm:"column:article_img_url;type:text;not null"`

	TopicRef  Topic `json:"-" gorm:"foreignKey:Topic;references:Slug;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	AuthorRef User  `json:"-" gorm:"foreignKey:Author;references:Username;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	// Comments are cascade-deleted with their article.
	Comments []Comment `json:"-" gorm:"foreignKey:ArticleID;references:ArticleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Article.
func (Article) TableName() string { return "articles" }

// Comment is a reply attached to an article.
type Comment struct {
	CommentID int64     `json:"comment_id" gorm:"column:comment_id;primaryKey;autoIncrement"`
	Body      string    `json:"body"       gorm:"column:body;type:text;not null"`
	ArticleID int64     `json:"article_id" gorm:"column:article_id;not null;index:idx_comments_article"`
	Author    string    `json:"author"     gorm:"column:author;type:varchar(64);not null"`
	Votes     int       `json:"votes"      gorm:"column:votes;not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null"`

	AuthorRef User `json:"-" gorm:"foreignKey:Author;references:Username;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the database table name for Comment.
func (Comment) TableName() string { return "comments" }

// ArticleSummary is the list-view projection of an article: every column
// except body, plus the computed comment_count.
type ArticleSummary struct {
	ArticleID     int64     `json:"article_id"      gorm:"column:article_id"`
	Title         string    `json:"title"           gorm:"column:title"`
	Topic         string    `json:"topic"           gorm:"column:topic"`
	Author        string    `json:"author"          gorm:"column:author"`
	CreatedAt     time.Time `json:"created_at"      gorm:"column:created_at"`
	Votes         int       `json:"votes"           gorm:"column:votes"`
	ArticleImgURL string    `json:"article_img_url" gorm:"column:article_img_url"`
	CommentCount  int64     `json:"comment_count"   gorm:"column:comment_count"`
}

// ArticleDetail is the single-article projection: all columns including
// body, plus comment_count.
type ArticleDetail struct {
	ArticleID     int64     `json:"article_id"      gorm:"column:article_id"`
	Title         string    `json:"title"           gorm:"column:title"`
	Topic         string    `json:"topic"           gorm:"column:topic"`
	Author        string    `json:"author"          gorm:"column:author"`
	Body          string    `json:"body"            gorm:"column:body"`
	CreatedAt     time.Time `json:"created_at"      gorm:"column:created_at"`
	Votes         int       `json:"votes"           gorm:"column:votes"`
	ArticleImgURL string    `json:"article_img_url" gorm:"column:article_img_url"`
	CommentCount  int64     `json:"comment_count"   gorm:"column:comment_count"`
}

// Models lists every persisted model in dependency order (parents first),
// suitable for AutoMigrate. Drop in reverse order.
func Models() []any {
	return []any{&Topic{}, &User{}, &Article{}, &Comment{}}
}
