package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/constella-app/api-go/models"
)

// PostRow is a post decorated with read-time engagement aggregates and the
// denormalized author/community columns produced by the listing queries.
type PostRow struct {
	models.Post
	LikesCount     int64   `json:"likes_count"`
	DislikesCount  int64   `json:"dislikes_count"`
	CommentsCount  int64   `json:"comments_count"`
	ViewerReaction *string `json:"viewer_reaction"`
	IsBookmarked   bool    `json:"is_bookmarked"`
	AuthorName     string  `json:"-"`
	AuthorAvatar   string  `json:"-"`
	CommunityName  string  `json:"-"`
}

// postRowSelect is the column list shared by every post listing. Engagement
// counts are computed at read time from the reaction/comment/bookmark tables,
// never stored.
const postRowSelect = `posts.*,
	users.name AS author_name,
	users.avatar_url AS author_avatar,
	communities.name AS community_name,
	(SELECT COUNT(*) FROM reactions WHERE reactions.post_id = posts.id AND reactions.reaction_type = 'like') AS likes_count,
	(SELECT COUNT(*) FROM reactions WHERE reactions.post_id = posts.id AND reactions.reaction_type = 'dislike') AS dislikes_count,
	(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comments_count,
	(SELECT reactions.reaction_type FROM reactions WHERE reactions.post_id = posts.id AND reactions.user_id = ?) AS viewer_reaction,
	EXISTS(SELECT 1 FROM bookmarks WHERE bookmarks.post_id = posts.id AND bookmarks.user_id = ?) AS is_bookmarked`

// postRows builds the decorated post query for a viewer. Callers add their
// own WHERE, ORDER BY, and pagination.
func postRows(db *gorm.DB, viewerID uint) *gorm.DB {
	return db.Model(&models.Post{}).
		Select(postRowSelect, viewerID, viewerID).
		Joins("JOIN users ON users.id = posts.author_id").
		Joins("LEFT JOIN communities ON communities.id = posts.community_id")
}

// loadImageURLs fetches image URLs for a batch of posts in one query.
func loadImageURLs(db *gorm.DB, postIDs []uint) map[uint][]string {
	urls := make(map[uint][]string, len(postIDs))
	if len(postIDs) == 0 {
		return urls
	}
	var images []models.Image
	db.Where("post_id IN ?", postIDs).Order("id").Find(&images)
	for _, img := range images {
		urls[img.PostID] = append(urls[img.PostID], img.URL)
	}
	return urls
}

// postJSON renders a decorated post row with nested author and community
// summaries, mirroring the shape clients consume in the feed and listings.
func postJSON(row PostRow, imageURLs []string) gin.H {
	if imageURLs == nil {
		imageURLs = []string{}
	}
	h := gin.H{
		"id":              row.ID,
		"title":           row.Title,
		"content":         row.Content,
		"post_type":       row.PostType,
		"community_id":    row.CommunityID,
		"image_urls":      imageURLs,
		"created_at":      row.CreatedAt,
		"updated_at":      row.UpdatedAt,
		"likes_count":     row.LikesCount,
		"dislikes_count":  row.DislikesCount,
		"comments_count":  row.CommentsCount,
		"viewer_reaction": row.ViewerReaction,
		"is_bookmarked":   row.IsBookmarked,
		"author": gin.H{
			"id":        row.AuthorID,
			"name":      row.AuthorName,
			"avatarUrl": row.AuthorAvatar,
		},
	}
	if row.CommunityID != nil {
		h["community"] = gin.H{"id": *row.CommunityID, "name": row.CommunityName}
	}
	return h
}

// postsJSON renders a page of decorated rows, batch-loading their images.
func postsJSON(db *gorm.DB, rows []PostRow) []gin.H {
	ids := make([]uint, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	urls := loadImageURLs(db, ids)

	out := make([]gin.H, len(rows))
	for i, r := range rows {
		out[i] = postJSON(r, urls[r.ID])
	}
	return out
}

// parsePagination reads 1-based page/per_page query params with the
// historical defaults.
func parsePagination(c *gin.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "10"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 50 {
		perPage = 50
	}
	return page, perPage
}

// totalPages returns the page count for a total at the given page size.
func totalPages(total int64, perPage int) int {
	return int((total + int64(perPage) - 1) / int64(perPage))
}
