// Package view assembles the nested "my vacations" payload every /users and
// /vacations endpoint responds with. The per-vacation fetches are independent
// and run concurrently; the final array keeps the order the memberships
// resolved in.
package view

import (
	"context"
	"sync"
	"time"

	"github.com/vacay-dev/vacay/internal/errs"
	"github.com/vacay-dev/vacay/internal/store"
)

type Member struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type Dates struct {
	ID    uint       `json:"id"`
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

type Comment struct {
	ID        uint   `json:"id"`
	Body      string `json:"body"`
	CreatedBy uint   `json:"created_by"`
}

type Activity struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Vacation struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Place       string     `json:"place"`
	Picture     string     `json:"picture"`
	Dates       *Dates     `json:"dates"`
	Comments    []Comment  `json:"comments"`
	Activities  []Activity `json:"activities"`
	Users       []Member   `json:"users"`
}

// User is the self view, identity plus every vacation the user belongs to.
type User struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username"`
	Avatar    string     `json:"avatar"`
	Vacations []Vacation `json:"vacations"`
}

// Vacations is the refresh payload mutations under /vacations respond with;
// the caller already knows who they are.
type Vacations struct {
	Vacations []Vacation `json:"vacations"`
}

// ForUser builds the full self view for a user.
func ForUser(ctx context.Context, userID uint) (*User, error) {
	user, err := store.UserByID(ctx, userID)

	if err != nil {
		if store.IsNotFound(err) {
			return nil, errs.NotFound("User with that ID doesn't exist")
		}
		return nil, errs.Internal("failed to fetch user", err)
	}

	vacations, err := VacationsFor(ctx, userID)

	if err != nil {
		return nil, err
	}

	return &User{
		ID:        user.ID,
		Username:  user.Username,
		Avatar:    user.Avatar,
		Vacations: vacations.Vacations,
	}, nil
}

// VacationsFor builds the vacations array for a user. A vacation deleted
// between the membership lookup and its row fetch is dropped from the
// result, tolerating read-after-delete races.
func VacationsFor(ctx context.Context, userID uint) (*Vacations, error) {
	ids, err := store.VacationIDsForUser(ctx, userID)

	if err != nil {
		return nil, errs.Internal("failed to resolve memberships", err)
	}

	fanCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]*Vacation, len(ids))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for i, id := range ids {
		wg.Add(1)

		go func(i int, id uint) {
			defer wg.Done()

			vacation, err := buildVacation(fanCtx, id, userID)

			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
					cancel()
				}
				mu.Unlock()
				return
			}

			results[i] = vacation
		}(i, id)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	vacations := make([]Vacation, 0, len(ids))

	for _, vacation := range results {
		if vacation != nil {
			vacations = append(vacations, *vacation)
		}
	}

	return &Vacations{Vacations: vacations}, nil
}

// buildVacation fetches one vacation with its date range, comments,
// activities and co-members. Returns (nil, nil) when the vacation row is
// gone.
func buildVacation(ctx context.Context, vacationID, viewerID uint) (*Vacation, error) {
	vacation, err := store.VacationByID(ctx, vacationID)

	if err != nil {
		if store.IsNotFound(err) {
			return nil, nil
		}
		return nil, errs.Internal("failed to fetch vacation", err)
	}

	result := Vacation{
		ID:          vacation.ID,
		Name:        vacation.Name,
		Description: vacation.Description,
		Place:       vacation.Place,
		Picture:     vacation.Picture,
		Comments:    make([]Comment, 0),
		Activities:  make([]Activity, 0),
		Users:       make([]Member, 0),
	}

	dates, err := store.DateRangeForVacation(ctx, vacationID)

	if err != nil && !store.IsNotFound(err) {
		return nil, errs.Internal("failed to fetch dates", err)
	}

	if err == nil {
		result.Dates = &Dates{ID: dates.ID, Start: dates.Start, End: dates.End}
	}

	comments, err := store.CommentsForVacation(ctx, vacationID)

	if err != nil {
		return nil, errs.Internal("failed to fetch comments", err)
	}

	for _, comment := range comments {
		result.Comments = append(result.Comments, Comment{
			ID:        comment.ID,
			Body:      comment.Body,
			CreatedBy: comment.CreatedBy,
		})
	}

	activities, err := store.ActivitiesForVacation(ctx, vacationID)

	if err != nil {
		return nil, errs.Internal("failed to fetch activities", err)
	}

	for _, activity := range activities {
		result.Activities = append(result.Activities, Activity{
			ID:          activity.ID,
			Name:        activity.Name,
			Description: activity.Description,
		})
	}

	members, err := store.MembersOf(ctx, vacationID, viewerID)

	if err != nil {
		return nil, errs.Internal("failed to fetch members", err)
	}

	for _, member := range members {
		result.Users = append(result.Users, Member{
			ID:       member.ID,
			Username: member.Username,
			Avatar:   member.Avatar,
		})
	}

	return &result, nil
}
