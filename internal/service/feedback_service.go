package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	apperrors "hugely/internal/errors"
	"hugely/internal/mail"
	"hugely/internal/model"
	"hugely/internal/repository"
)

// FeedBackInput is the public contact form.
type FeedBackInput struct {
	Name    string `json:"name" form:"name" validate:"required,max=20"`
	Email   string `json:"mail" form:"mail" validate:"required,max=30,fbemail"`
	Content string `json:"messageForm" form:"messageForm" validate:"required"`
}

// ReplyInput is an administrator's answer to a feedback message. An empty
// Email falls back to the submitter's address.
type ReplyInput struct {
	Email   string `json:"fb_email" form:"fb_email"`
	Subject string `json:"title" form:"title" validate:"required"`
	Body    string `json:"content" form:"content" validate:"required"`
}

// FeedBackPage is one page of the feedback listing.
type FeedBackPage struct {
	Items       []model.FeedBackView `json:"feedback_list"`
	CurrentPage int                  `json:"current_page"`
	TotalPage   int                  `json:"total_page"`
}

// FeedBackService manages visitor feedback.
type FeedBackService interface {
	Submit(ctx context.Context, in FeedBackInput) (*model.FeedBack, error)
	List(ctx context.Context, page int, keywords string) (*FeedBackPage, error)
	Get(ctx context.Context, id uint) (*model.FeedBack, error)
	Reply(ctx context.Context, id uint, in ReplyInput) error
	Delete(ctx context.Context, id uint) error
}

type feedbackService struct {
	repo   repository.FeedBackRepository
	sender mail.Sender
	log    zerolog.Logger
}

// NewFeedBackService creates a feedback service sending replies through sender.
func NewFeedBackService(repo repository.FeedBackRepository, sender mail.Sender, log zerolog.Logger) FeedBackService {
	return &feedbackService{repo: repo, sender: sender, log: log}
}

// Submit stores a contact form message as not yet replied.
func (s *feedbackService) Submit(ctx context.Context, in FeedBackInput) (*model.FeedBack, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	feedback := &model.FeedBack{
		Name:        in.Name,
		Email:       in.Email,
		Content:     in.Content,
		ReplyStatus: model.ReplyStatusPending,
	}
	if err := s.repo.Create(ctx, feedback); err != nil {
		s.log.Error().Err(err).Msg("save feedback")
		return nil, fmt.Errorf("%w: save feedback", apperrors.ErrDatabase)
	}
	return feedback, nil
}

// List returns one page of feedback, newest first. Query faults yield an
// empty page.
func (s *feedbackService) List(ctx context.Context, page int, keywords string) (*FeedBackPage, error) {
	result := &FeedBackPage{Items: []model.FeedBackView{}, CurrentPage: 1, TotalPage: 1}

	p, err := s.repo.Paginate(ctx, keywords, page)
	if err != nil {
		s.log.Error().Err(err).Int("page", page).Msg("paginate feedback")
		return result, nil
	}

	for i := range p.Items {
		result.Items = append(result.Items, p.Items[i].View())
	}
	result.CurrentPage = p.CurrentPage
	result.TotalPage = p.TotalPages
	return result, nil
}

func (s *feedbackService) Get(ctx context.Context, id uint) (*model.FeedBack, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: feedback_id is required", apperrors.ErrValidation)
	}
	feedback, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.log.Error().Err(err).Uint("feedback_id", id).Msg("find feedback")
		}
		return nil, fmt.Errorf("feedback %d: %w", id, apperrors.ErrNotFound)
	}
	return feedback, nil
}

// Reply mails the answer and then marks the message replied. A failed send
// leaves the message unreplied.
func (s *feedbackService) Reply(ctx context.Context, id uint, in ReplyInput) error {
	if err := validateStruct(in); err != nil {
		return err
	}

	feedback, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	recipient := in.Email
	if recipient == "" {
		recipient = feedback.Email
	}

	msg := mail.Message{To: recipient, Subject: in.Subject, Body: in.Body}
	if err := s.sender.Send(ctx, msg); err != nil {
		s.log.Error().Err(err).Uint("feedback_id", id).Str("to", recipient).Msg("send reply")
		return fmt.Errorf("%w: %v", apperrors.ErrMail, err)
	}

	if err := s.repo.MarkReplied(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.log.Error().Err(err).Uint("feedback_id", id).Msg("mark feedback replied")
		return fmt.Errorf("%w: update reply status", apperrors.ErrDatabase)
	}
	return nil
}

// Delete removes the message permanently.
func (s *feedbackService) Delete(ctx context.Context, id uint) error {
	feedback, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, feedback); err != nil {
		s.log.Error().Err(err).Uint("feedback_id", id).Msg("delete feedback")
		return fmt.Errorf("%w: delete feedback", apperrors.ErrDatabase)
	}
	return nil
}
