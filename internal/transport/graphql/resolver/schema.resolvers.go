package resolver

// This file will be automatically regenerated based on the schema, any resolver
// implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.86

import (
	"context"
	"errors"

	"github.com/lawndon/lawndon-backend/internal/domain"
	"github.com/lawndon/lawndon-backend/internal/service/forum"
	"github.com/lawndon/lawndon-backend/internal/service/mower"
	"github.com/lawndon/lawndon-backend/internal/service/mowing"
	"github.com/lawndon/lawndon-backend/internal/service/profile"
	"github.com/lawndon/lawndon-backend/internal/transport/graphql/dataloader"
	"github.com/lawndon/lawndon-backend/internal/transport/graphql/generated"
)

// Owner is the resolver for the owner field.
func (r *forumResolver) Owner(ctx context.Context, obj *domain.Forum) (*domain.Profile, error) {
	return dataloader.FromContext(ctx).ProfileByAccountID.Load(ctx, obj.AccountID)()
}

// Owner is the resolver for the owner field.
func (r *mowerResolver) Owner(ctx context.Context, obj *domain.Mower) (*domain.Profile, error) {
	return dataloader.FromContext(ctx).ProfileByAccountID.Load(ctx, obj.AccountID)()
}

// Owner is the resolver for the owner field.
func (r *mowingResolver) Owner(ctx context.Context, obj *domain.Mowing) (*domain.Profile, error) {
	return dataloader.FromContext(ctx).ProfileByAccountID.Load(ctx, obj.AccountID)()
}

// Register is the resolver for the register field.
func (r *mutationResolver) Register(ctx context.Context, username string, securityCode string, telegramTag string, region string, cords domain.Cord, activityDay string, mainPhoto string) (*profile.UserCookie, error) {
	cookie, err := r.profile.Register(ctx, profile.RegisterInput{
		Username:     username,
		SecurityCode: securityCode,
		TelegramTag:  telegramTag,
		Region:       region,
		Cords:        cords,
		ActivityDay:  activityDay,
		MainPhoto:    mainPhoto,
	})
	if err != nil {
		return nil, err
	}
	return &cookie, nil
}

// Login is the resolver for the login field.
func (r *mutationResolver) Login(ctx context.Context, securityCode string) (*profile.UserCookie, error) {
	cookie, err := r.profile.Login(ctx, securityCode)
	if err != nil {
		return nil, err
	}
	return &cookie, nil
}

// GetProfiles is the resolver for the getProfiles field.
func (r *mutationResolver) GetProfiles(ctx context.Context, username string) ([]*domain.Profile, error) {
	return r.profile.ListProfiles(ctx)
}

// GetProfile is the resolver for the getProfile field.
func (r *mutationResolver) GetProfile(ctx context.Context, accountID string) (*domain.Profile, error) {
	p, err := r.profile.GetProfile(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// UpdateProfilePersonalInfo is the resolver for the updateProfilePersonalInfo field.
func (r *mutationResolver) UpdateProfilePersonalInfo(ctx context.Context, accountID string, username string, mainPhoto string) (string, error) {
	err := r.profile.UpdatePersonalInfo(ctx, profile.UpdatePersonalInfoInput{
		AccountID: accountID,
		Username:  username,
		MainPhoto: mainPhoto,
	})
	return r.status(ctx, "updateProfilePersonalInfo", err)
}

// UpdateProfileGeoInfo is the resolver for the updateProfileGeoInfo field.
func (r *mutationResolver) UpdateProfileGeoInfo(ctx context.Context, accountID string, region string, cords domain.Cord) (string, error) {
	err := r.profile.UpdateGeoInfo(ctx, profile.UpdateGeoInfoInput{
		AccountID: accountID,
		Region:    region,
		Cords:     cords,
	})
	return r.status(ctx, "updateProfileGeoInfo", err)
}

// UpdateProfileLawncareInfo is the resolver for the updateProfileLawncareInfo field.
func (r *mutationResolver) UpdateProfileLawncareInfo(ctx context.Context, accountID string, activityDay string, rate float64) (string, error) {
	err := r.profile.UpdateLawncareInfo(ctx, profile.UpdateLawncareInfoInput{
		AccountID:   accountID,
		ActivityDay: activityDay,
		Rate:        rate,
	})
	return r.status(ctx, "updateProfileLawncareInfo", err)
}

// UpdateProfileSecurityCode is the resolver for the updateProfileSecurityCode field.
func (r *mutationResolver) UpdateProfileSecurityCode(ctx context.Context, accountID string, securityCode string) (string, error) {
	err := r.profile.UpdateSecurityCode(ctx, profile.UpdateSecurityCodeInput{
		AccountID:    accountID,
		SecurityCode: securityCode,
	})
	return r.status(ctx, "updateProfileSecurityCode", err)
}

// ManageProfileOrder is the resolver for the manageProfileOrder field.
func (r *mutationResolver) ManageProfileOrder(ctx context.Context, accountID string, option string, msg string, square float64, cost float64, date string, collID string) (string, error) {
	err := r.profile.ManageOrder(ctx, profile.ManageOrderInput{
		AccountID: accountID,
		Option:    option,
		Msg:       msg,
		Square:    square,
		Cost:      cost,
		Date:      date,
		CollID:    collID,
	})
	return r.status(ctx, "manageProfileOrder", err)
}

// ManageProfileZone is the resolver for the manageProfileZone field.
func (r *mutationResolver) ManageProfileZone(ctx context.Context, accountID string, option string, title string, category string, cords domain.Cord, square float64, status string, photoURL string, collID string) (string, error) {
	err := r.profile.ManageZone(ctx, profile.ManageZoneInput{
		AccountID: accountID,
		Option:    option,
		Title:     title,
		Category:  category,
		Cords:     cords,
		Square:    square,
		Status:    status,
		PhotoURL:  photoURL,
		CollID:    collID,
	})
	return r.status(ctx, "manageProfileZone", err)
}

// CreateMower is the resolver for the createMower field.
func (r *mutationResolver) CreateMower(ctx context.Context, username string, id string, title string, category string, format string, country string, cutSize float64, isStripe bool) (string, error) {
	err := r.mower.Create(ctx, mower.CreateInput{
		Username:  username,
		AccountID: id,
		Title:     title,
		Category:  category,
		Format:    format,
		Country:   country,
		CutSize:   cutSize,
		IsStripe:  isStripe,
	})
	return r.status(ctx, "createMower", err)
}

// GetMowers is the resolver for the getMowers field.
func (r *mutationResolver) GetMowers(ctx context.Context, username string) ([]*domain.Mower, error) {
	return r.mower.ListMowers(ctx)
}

// GetMower is the resolver for the getMower field.
func (r *mutationResolver) GetMower(ctx context.Context, username string, shortid string) (*domain.Mower, error) {
	return r.mower.GetMower(ctx, shortid)
}

// MakeMowerReview is the resolver for the makeMowerReview field.
func (r *mutationResolver) MakeMowerReview(ctx context.Context, username string, id string, content string, test string, rate float64) (string, error) {
	err := r.mower.MakeReview(ctx, mower.MakeReviewInput{
		Username: username,
		MowerID:  id,
		Content:  content,
		Test:     test,
		Rate:     rate,
	})
	return r.status(ctx, "makeMowerReview", err)
}

// UpdateMowerInfo is the resolver for the updateMowerInfo field.
func (r *mutationResolver) UpdateMowerInfo(ctx context.Context, username string, id string, link string, mainPhoto string) (string, error) {
	err := r.mower.UpdateInfo(ctx, mower.UpdateInfoInput{
		Username:  username,
		MowerID:   id,
		Link:      link,
		MainPhoto: mainPhoto,
	})
	return r.status(ctx, "updateMowerInfo", err)
}

// ManageMowerOffer is the resolver for the manageMowerOffer field.
func (r *mutationResolver) ManageMowerOffer(ctx context.Context, username string, id string, option string, marketplace string, format string, cost float64, cords domain.Cord, collID string) (string, error) {
	err := r.mower.ManageOffer(ctx, mower.ManageOfferInput{
		Username:    username,
		MowerID:     id,
		Option:      option,
		Marketplace: marketplace,
		Format:      format,
		Cost:        cost,
		Cords:       cords,
		CollID:      collID,
	})
	return r.status(ctx, "manageMowerOffer", err)
}

// CreateMowing is the resolver for the createMowing field.
func (r *mutationResolver) CreateMowing(ctx context.Context, username string, id string, title string, category string, level string, square float64, date string, time string, region string, cords domain.Cord, borders []*domain.Cord, activity string) (string, error) {
	err := r.mowing.Create(ctx, mowing.CreateInput{
		Username:  username,
		AccountID: id,
		Title:     title,
		Category:  category,
		Level:     level,
		Square:    square,
		Date:      date,
		Time:      time,
		Region:    region,
		Cords:     cords,
		Borders:   derefCords(borders),
		Activity:  activity,
	})
	return r.status(ctx, "createMowing", err)
}

// GetMowings is the resolver for the getMowings field.
func (r *mutationResolver) GetMowings(ctx context.Context, username string) ([]*domain.Mowing, error) {
	return r.mowing.ListMowings(ctx)
}

// GetMowing is the resolver for the getMowing field.
func (r *mutationResolver) GetMowing(ctx context.Context, username string, shortid string) (*domain.Mowing, error) {
	return r.mowing.GetMowing(ctx, shortid)
}

// ManageMowingStatus is the resolver for the manageMowingStatus field.
func (r *mutationResolver) ManageMowingStatus(ctx context.Context, username string, id string, option string, activity string) (string, error) {
	err := r.mowing.ManageStatus(ctx, mowing.ManageStatusInput{
		Username: username,
		MowingID: id,
		Option:   option,
		Activity: activity,
	})
	return r.status(ctx, "manageMowingStatus", err)
}

// UpdateMowingPhoto is the resolver for the updateMowingPhoto field.
func (r *mutationResolver) UpdateMowingPhoto(ctx context.Context, username string, id string, mainPhoto string) (string, error) {
	err := r.mowing.UpdatePhoto(ctx, mowing.UpdatePhotoInput{
		Username:  username,
		MowingID:  id,
		MainPhoto: mainPhoto,
	})
	return r.status(ctx, "updateMowingPhoto", err)
}

// ManageMowingTopic is the resolver for the manageMowingTopic field.
func (r *mutationResolver) ManageMowingTopic(ctx context.Context, username string, id string, option string, text string, category string, collID string) (string, error) {
	err := r.mowing.ManageTopic(ctx, mowing.ManageTopicInput{
		Username: username,
		MowingID: id,
		Option:   option,
		Text:     text,
		Category: category,
		CollID:   collID,
	})
	return r.status(ctx, "manageMowingTopic", err)
}

// CreateForum is the resolver for the createForum field.
func (r *mutationResolver) CreateForum(ctx context.Context, username string, id string, title string, category string, format string, country string, description string, status string, region string, cords domain.Cord) (string, error) {
	err := r.forum.Create(ctx, forum.CreateInput{
		Username:    username,
		AccountID:   id,
		Title:       title,
		Category:    category,
		Format:      format,
		Country:     country,
		Description: description,
		Status:      status,
		Region:      region,
		Cords:       cords,
	})
	return r.status(ctx, "createForum", err)
}

// GetForums is the resolver for the getForums field.
func (r *mutationResolver) GetForums(ctx context.Context, username string) ([]*domain.Forum, error) {
	return r.forum.ListForums(ctx)
}

// GetForum is the resolver for the getForum field.
func (r *mutationResolver) GetForum(ctx context.Context, username string, shortid string) (*domain.Forum, error) {
	return r.forum.GetForum(ctx, shortid)
}

// ManageForumImage is the resolver for the manageForumImage field.
func (r *mutationResolver) ManageForumImage(ctx context.Context, username string, id string, option string, text string, level string, format string, status string, photoURL string, collID string) (string, error) {
	err := r.forum.ManageImage(ctx, forum.ManageImageInput{
		Username: username,
		ForumID:  id,
		Option:   option,
		Text:     text,
		Level:    level,
		Format:   format,
		Status:   status,
		PhotoURL: photoURL,
		CollID:   collID,
	})
	return r.status(ctx, "manageForumImage", err)
}

// UpdateForumProgress is the resolver for the updateForumProgress field.
func (r *mutationResolver) UpdateForumProgress(ctx context.Context, username string, id string, progress float64) (string, error) {
	err := r.forum.UpdateProgress(ctx, forum.UpdateProgressInput{
		Username: username,
		ForumID:  id,
		Progress: progress,
	})
	return r.status(ctx, "updateForumProgress", err)
}

// ManageForumSource is the resolver for the manageForumSource field.
func (r *mutationResolver) ManageForumSource(ctx context.Context, username string, id string, option string, title string, category string, url string, collID string) (string, error) {
	err := r.forum.ManageSource(ctx, forum.ManageSourceInput{
		Username: username,
		ForumID:  id,
		Option:   option,
		Title:    title,
		Category: category,
		URL:      url,
		CollID:   collID,
	})
	return r.status(ctx, "manageForumSource", err)
}

// Test is the resolver for the test field.
func (r *queryResolver) Test(ctx context.Context) (string, error) {
	return "Hi", nil
}

// Forum returns generated.ForumResolver implementation.
func (r *Resolver) Forum() generated.ForumResolver { return &forumResolver{r} }

// Mower returns generated.MowerResolver implementation.
func (r *Resolver) Mower() generated.MowerResolver { return &mowerResolver{r} }

// Mowing returns generated.MowingResolver implementation.
func (r *Resolver) Mowing() generated.MowingResolver { return &mowingResolver{r} }

// Mutation returns generated.MutationResolver implementation.
func (r *Resolver) Mutation() generated.MutationResolver { return &mutationResolver{r} }

// Query returns generated.QueryResolver implementation.
func (r *Resolver) Query() generated.QueryResolver { return &queryResolver{r} }

type forumResolver struct{ *Resolver }
type mowerResolver struct{ *Resolver }
type mowingResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
