package business

import (
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/dto"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/entities"
	identity "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/entities"
	"github.com/Conte777/NewsFlow/services/announcement-service/pkg/mapfn"
)

func toResponse(a entities.Announcement) dto.AnnouncementResponse {
	resp := dto.AnnouncementResponse{
		ID:             a.ID,
		Headline:       a.Headline,
		Syn:            a.Syn,
		Body:           a.Body,
		Slug:           a.Slug,
		ImageURL:       a.ImageURL,
		AuthorID:       a.AuthorID,
		OrganizationID: a.OrganizationID,
		Status:         string(a.Status),
		ViewCount:      a.ViewCount,
		ShareCount:     a.ShareCount,
		UpvoteCount:    a.UpvoteCount,
		PublishedDate:  a.PublishedDate,
		ModifiedDate:   a.ModifiedDate,
		ArchivedDate:   a.ArchivedDate,
	}
	if a.Organization != nil {
		resp.OrganizationSlug = a.Organization.Slug
	}
	return resp
}

func toResponses(list []entities.Announcement) []dto.AnnouncementResponse {
	return mapfn.ConvertSlice(list, toResponse)
}

func toDetails(a *entities.Announcement) *dto.AnnouncementDetailsResponse {
	details := &dto.AnnouncementDetailsResponse{
		AnnouncementResponse: toResponse(*a),
		Author:               toPublicUser(a.Author),
		Comments:             mapfn.ConvertSlice(a.Comments, toCommentResponse),
	}
	if a.Organization != nil {
		details.Organization = &dto.OrganizationResponse{
			ID:               a.Organization.ID,
			Name:             a.Organization.Name,
			Slug:             a.Organization.Slug,
			Logo:             a.Organization.Logo,
			ShortDescription: a.Organization.ShortDescription,
			Website:          a.Organization.Website,
		}
	}
	return details
}

func toCommentResponse(c entities.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:             c.ID,
		Text:           c.Text,
		AnnouncementID: c.AnnouncementID,
		Author:         toPublicUser(c.Author),
		PostedDate:     c.PostedDate,
	}
}

func toPublicUser(u *identity.User) *dto.PublicUser {
	if u == nil {
		return nil
	}
	return &dto.PublicUser{
		ID:           u.ID,
		Onyen:        u.Onyen,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Pronouns:     u.Pronouns,
		Email:        u.Email,
		GitHub:       u.GitHub,
		GitHubAvatar: u.GitHubAvatar,
	}
}

func toSearchDocument(a entities.Announcement) dto.SearchDocument {
	return dto.SearchDocument{
		ID:       a.ID,
		Headline: a.Headline,
		Syn:      a.Syn,
		Body:     a.Body,
		Slug:     a.Slug,
	}
}

func toEvent(eventType string, a *entities.Announcement, actorID uint) *dto.AnnouncementEvent {
	return &dto.AnnouncementEvent{
		Type:           eventType,
		AnnouncementID: a.ID,
		Slug:           a.Slug,
		Status:         string(a.Status),
		AuthorID:       a.AuthorID,
		OrganizationID: a.OrganizationID,
		ActorID:        actorID,
	}
}
