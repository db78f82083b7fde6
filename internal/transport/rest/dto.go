package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/wordloop/wordloop-backend/internal/domain"
)

type userResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

type cardResponse struct {
	ID           string             `json:"id"`
	WordListID   *uuid.UUID         `json:"wordListId,omitempty"`
	WordListName *string            `json:"wordListName,omitempty"`
	Word         string             `json:"word"`
	Definition   string             `json:"definition"`
	Details      domain.WordDetails `json:"details"`
	ReviewStep   int                `json:"reviewStep"`
	ReviewStatus string             `json:"reviewStatus"`
	NextReview   time.Time          `json:"nextReview"`
	LastReviewed *time.Time         `json:"lastReviewed,omitempty"`
	ViewCount    int                `json:"viewCount"`
	SuccessCount int                `json:"successCount"`
	FailureCount int                `json:"failureCount"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

func toCardResponse(c domain.Card) cardResponse {
	return cardResponse{
		ID:           c.ID.String(),
		WordListID:   c.WordListID,
		Word:         c.Word,
		Definition:   c.Definition,
		Details:      c.Details,
		ReviewStep:   c.ReviewStep,
		ReviewStatus: string(c.ReviewStatus),
		NextReview:   c.NextReview,
		LastReviewed: c.LastReviewed,
		ViewCount:    c.ViewCount,
		SuccessCount: c.SuccessCount,
		FailureCount: c.FailureCount,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toCardWithListResponse(c domain.CardWithListName) cardResponse {
	resp := toCardResponse(c.Card)
	resp.WordListName = c.WordListName
	return resp
}

func toCardResponses(cards []domain.Card) []cardResponse {
	out := make([]cardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, toCardResponse(c))
	}
	return out
}

type wordListResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	IsPublic    bool      `json:"isPublic"`
	CardCount   int       `json:"cardCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toWordListResponse(l domain.WordList) wordListResponse {
	return wordListResponse{
		ID:          l.ID.String(),
		Name:        l.Name,
		Description: l.Description,
		IsPublic:    l.IsPublic,
		CardCount:   l.CardCount,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

type reviewSessionResponse struct {
	ID          string      `json:"id"`
	CardIDs     []uuid.UUID `json:"cardIds"`
	Status      string      `json:"status"`
	StartedAt   time.Time   `json:"startedAt"`
	CompletedAt *time.Time  `json:"completedAt,omitempty"`
}

func toReviewSessionResponse(s domain.ReviewSession) reviewSessionResponse {
	return reviewSessionResponse{
		ID:          s.ID.String(),
		CardIDs:     s.CardIDs,
		Status:      string(s.Status),
		StartedAt:   s.StartedAt,
		CompletedAt: s.CompletedAt,
	}
}

type testResultResponse struct {
	CardID      string `json:"cardId"`
	IsCorrect   bool   `json:"isCorrect"`
	TimeSpentMs int    `json:"timeSpentMs"`
}

type testSessionResponse struct {
	ID          string               `json:"id"`
	Status      string               `json:"status"`
	StartedAt   time.Time            `json:"startedAt"`
	CompletedAt *time.Time           `json:"completedAt,omitempty"`
	Results     []testResultResponse `json:"results"`
}

func toTestSessionResponse(s domain.TestSession) testSessionResponse {
	results := make([]testResultResponse, 0, len(s.Results))
	for _, r := range s.Results {
		results = append(results, testResultResponse{
			CardID:      r.CardID.String(),
			IsCorrect:   r.IsCorrect,
			TimeSpentMs: r.TimeSpentMs,
		})
	}
	return testSessionResponse{
		ID:          s.ID.String(),
		Status:      string(s.Status),
		StartedAt:   s.StartedAt,
		CompletedAt: s.CompletedAt,
		Results:     results,
	}
}

type statsResponse struct {
	TotalCards       int `json:"totalCards"`
	ActiveCards      int `json:"activeCards"`
	CompletedCards   int `json:"completedCards"`
	TotalReviews     int `json:"totalReviews"`
	SuccessRate      int `json:"successRate"`
	ChallengingCards int `json:"challengingCards"`
	ReviewsToday     int `json:"reviewsToday"`
}

func toStatsResponse(s domain.Stats) statsResponse {
	return statsResponse{
		TotalCards:       s.TotalCards,
		ActiveCards:      s.ActiveCards,
		CompletedCards:   s.CompletedCards,
		TotalReviews:     s.TotalReviews,
		SuccessRate:      s.SuccessRate,
		ChallengingCards: s.ChallengingCards,
		ReviewsToday:     s.ReviewsToday,
	}
}

type bucketEntryResponse struct {
	CardID          string `json:"cardId"`
	IsFutureReview  bool   `json:"isFutureReview"`
	IsFromFailure   bool   `json:"isFromFailure"`
	HasBeenReviewed bool   `json:"hasBeenReviewed"`
}

type dateBucketResponse struct {
	Date        string                `json:"date"`
	Entries     []bucketEntryResponse `json:"entries"`
	Reviewed    int                   `json:"reviewed"`
	NotReviewed int                   `json:"notReviewed"`
	FromFailure int                   `json:"fromFailure"`
}

type upcomingResponse struct {
	Buckets   map[string]dateBucketResponse `json:"buckets"`
	Total     int                           `json:"total"`
	Intervals []int                         `json:"intervals"`
}

func toUpcomingResponse(u domain.UpcomingCards) upcomingResponse {
	buckets := make(map[string]dateBucketResponse, len(u.Buckets))
	for key, b := range u.Buckets {
		entries := make([]bucketEntryResponse, 0, len(b.Entries))
		for _, e := range b.Entries {
			entries = append(entries, bucketEntryResponse{
				CardID:          e.CardID.String(),
				IsFutureReview:  e.IsFutureReview,
				IsFromFailure:   e.IsFromFailure,
				HasBeenReviewed: e.HasBeenReviewed,
			})
		}
		buckets[key] = dateBucketResponse{
			Date:        b.Date.Format("2006-01-02"),
			Entries:     entries,
			Reviewed:    b.Reviewed,
			NotReviewed: b.NotReviewed,
			FromFailure: b.FromFailure,
		}
	}
	return upcomingResponse{
		Buckets:   buckets,
		Total:     u.Total,
		Intervals: u.Intervals,
	}
}

type historySummaryResponse struct {
	TotalReviews       int `json:"totalReviews"`
	TotalSuccess       int `json:"totalSuccess"`
	TotalFailures      int `json:"totalFailures"`
	AverageSuccessRate int `json:"averageSuccessRate"`
}

type historyResponse struct {
	Cards   []cardResponse            `json:"cards"`
	Summary historySummaryResponse    `json:"summary"`
	ByDate  map[string][]cardResponse `json:"byDate"`
}

func toHistoryResponse(h domain.ReviewHistory) historyResponse {
	cards := make([]cardResponse, 0, len(h.Cards))
	for _, c := range h.Cards {
		cards = append(cards, toCardWithListResponse(c))
	}
	byDate := make(map[string][]cardResponse, len(h.ByDate))
	for date, group := range h.ByDate {
		out := make([]cardResponse, 0, len(group))
		for _, c := range group {
			out = append(out, toCardWithListResponse(c))
		}
		byDate[date] = out
	}
	return historyResponse{
		Cards: cards,
		Summary: historySummaryResponse{
			TotalReviews:       h.Summary.TotalReviews,
			TotalSuccess:       h.Summary.TotalSuccess,
			TotalFailures:      h.Summary.TotalFailures,
			AverageSuccessRate: h.Summary.AverageSuccessRate,
		},
		ByDate: byDate,
	}
}

type scheduleResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Intervals   []int     `json:"intervals"`
	IsDefault   bool      `json:"isDefault"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toScheduleResponse(s domain.IntervalSchedule) scheduleResponse {
	return scheduleResponse{
		ID:          s.ID.String(),
		Name:        s.Name,
		Description: s.Description,
		Intervals:   s.Intervals,
		IsDefault:   s.IsDefault,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

type importRowErrorResponse struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type importResponse struct {
	Success int                      `json:"success"`
	Failed  int                      `json:"failed"`
	Errors  []importRowErrorResponse `json:"errors"`
}

func toImportResponse(r domain.ImportResult) importResponse {
	errs := make([]importRowErrorResponse, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, importRowErrorResponse{Row: e.Row, Message: e.Message})
	}
	return importResponse{Success: r.Success, Failed: r.Failed, Errors: errs}
}
