package converter

import (
	"carelink-backend/internal/delivery/dto"
	"carelink-backend/internal/domain/entity"
)

// BlogToResponse converts a Blog entity to BlogResponse DTO. Images are
// expected pre-sorted by position by the repository.
func BlogToResponse(blog *entity.Blog) *dto.BlogResponse {
	if blog == nil {
		return nil
	}

	images := make([]dto.BlogImageResponse, len(blog.Images))
	for i, img := range blog.Images {
		images[i] = dto.BlogImageResponse{
			ID:       img.ID,
			URL:      img.URL,
			Position: img.Position,
		}
	}

	return &dto.BlogResponse{
		ID:          blog.ID,
		AuthorID:    blog.AuthorID,
		Title:       blog.Title,
		Slug:        blog.Slug,
		Content:     blog.Content,
		SEOMetadata: blog.SEOMetadata,
		PublishedAt: blog.PublishedAt,
		LikesCount:  blog.LikesCount,
		Images:      images,
		CreatedAt:   blog.CreatedAt,
		UpdatedAt:   blog.UpdatedAt,
	}
}

// BlogsToResponses converts a slice of Blog entities to BlogResponse DTOs
func BlogsToResponses(blogs []entity.Blog) []dto.BlogResponse {
	responses := make([]dto.BlogResponse, len(blogs))
	for i := range blogs {
		responses[i] = *BlogToResponse(&blogs[i])
	}
	return responses
}

// CommentToResponse converts a BlogComment entity to CommentResponse DTO
func CommentToResponse(comment *entity.BlogComment) *dto.CommentResponse {
	if comment == nil {
		return nil
	}

	return &dto.CommentResponse{
		ID:        comment.ID,
		BlogID:    comment.BlogID,
		UserID:    comment.UserID,
		UserName:  comment.User.FullName,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}

// CommentsToResponses converts a slice of BlogComment entities
func CommentsToResponses(comments []entity.BlogComment) []dto.CommentResponse {
	responses := make([]dto.CommentResponse, len(comments))
	for i := range comments {
		responses[i] = *CommentToResponse(&comments[i])
	}
	return responses
}

// ShareToResponse converts a BlogShare entity to ShareResponse DTO
func ShareToResponse(share *entity.BlogShare) *dto.ShareResponse {
	if share == nil {
		return nil
	}

	return &dto.ShareResponse{
		ID:        share.ID,
		BlogID:    share.BlogID,
		Platform:  string(share.Platform),
		CreatedAt: share.CreatedAt,
	}
}
