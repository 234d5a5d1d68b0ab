package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	apperrors "hugely/internal/errors"
	"hugely/internal/model"
	"hugely/internal/repository"
)

// NewsInput carries the editable fields of a news item.
type NewsInput struct {
	Title  string `json:"title" form:"title" validate:"required,max=256"`
	Link   string `json:"link" form:"link" validate:"required,max=256"`
	Digest string `json:"digest" form:"digest" validate:"required,max=512"`
}

// NewsPage is one page of the news listing.
type NewsPage struct {
	Items       []model.NewsView `json:"news_list"`
	CurrentPage int              `json:"current_page"`
	TotalPage   int              `json:"total_page"`
}

// NewsService manages news articles.
type NewsService interface {
	Publish(ctx context.Context, in NewsInput, authorID uint) (*model.News, error)
	List(ctx context.Context, page int, keywords string) (*NewsPage, error)
	Get(ctx context.Context, id uint) (*model.NewsView, error)
	Edit(ctx context.Context, id uint, in NewsInput, editorID uint) error
	Delete(ctx context.Context, id uint) error
}

type newsService struct {
	repo repository.NewsRepository
	log  zerolog.Logger
}

// NewNewsService creates a news service.
func NewNewsService(repo repository.NewsRepository, log zerolog.Logger) NewsService {
	return &newsService{repo: repo, log: log}
}

// Publish stores a new article owned by authorID.
func (s *newsService) Publish(ctx context.Context, in NewsInput, authorID uint) (*model.News, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if err := validate.Var(in.Link, "newslink"); err != nil {
		return nil, fmt.Errorf("%w: link is malformed", apperrors.ErrValidation)
	}
	if authorID == 0 {
		return nil, fmt.Errorf("%w: author is required", apperrors.ErrValidation)
	}

	news := &model.News{
		Title:  in.Title,
		Link:   in.Link,
		Digest: in.Digest,
		UserID: &authorID,
	}
	if err := s.repo.Create(ctx, news); err != nil {
		s.log.Error().Err(err).Msg("save news")
		return nil, fmt.Errorf("%w: save news", apperrors.ErrDatabase)
	}
	return news, nil
}

// List returns one page of articles, newest first. Query faults yield an
// empty page.
func (s *newsService) List(ctx context.Context, page int, keywords string) (*NewsPage, error) {
	result := &NewsPage{Items: []model.NewsView{}, CurrentPage: 1, TotalPage: 1}

	p, err := s.repo.Paginate(ctx, keywords, page)
	if err != nil {
		s.log.Error().Err(err).Int("page", page).Msg("paginate news")
		return result, nil
	}

	for i := range p.Items {
		view, err := p.Items[i].View()
		if err != nil {
			return nil, fmt.Errorf("%w: news %d: %v", apperrors.ErrDataIntegrity, p.Items[i].ID, err)
		}
		result.Items = append(result.Items, view)
	}
	result.CurrentPage = p.CurrentPage
	result.TotalPage = p.TotalPages
	return result, nil
}

// Get returns the serialized article.
func (s *newsService) Get(ctx context.Context, id uint) (*model.NewsView, error) {
	news, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	view, err := news.View()
	if err != nil {
		return nil, fmt.Errorf("%w: news %d: %v", apperrors.ErrDataIntegrity, id, err)
	}
	return &view, nil
}

// Edit overwrites every field and makes editorID the owner.
func (s *newsService) Edit(ctx context.Context, id uint, in NewsInput, editorID uint) error {
	if err := validateStruct(in); err != nil {
		return err
	}

	news, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	news.Title = in.Title
	news.Link = in.Link
	news.Digest = in.Digest
	news.UserID = &editorID

	if err := s.repo.Update(ctx, news); err != nil {
		s.log.Error().Err(err).Uint("news_id", id).Msg("update news")
		return fmt.Errorf("%w: save news", apperrors.ErrDatabase)
	}
	return nil
}

// Delete removes the article permanently.
func (s *newsService) Delete(ctx context.Context, id uint) error {
	news, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, news); err != nil {
		s.log.Error().Err(err).Uint("news_id", id).Msg("delete news")
		return fmt.Errorf("%w: delete news", apperrors.ErrDatabase)
	}
	return nil
}

func (s *newsService) find(ctx context.Context, id uint) (*model.News, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: news_id is required", apperrors.ErrValidation)
	}
	news, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.log.Error().Err(err).Uint("news_id", id).Msg("find news")
		}
		return nil, fmt.Errorf("news %d: %w", id, apperrors.ErrNotFound)
	}
	return news, nil
}
