package service

import (
	"context"
	"sort"
	"time"

	"gamerank/internal/models"

	"gorm.io/gorm"
)

// In-memory repository fakes. They reproduce the store behaviors the
// services depend on: not-found and duplicate-key errors, unique
// indexes, newest-first comment ordering.

type memGameRepo struct {
	games map[string]models.Game
}

func newMemGameRepo(games ...models.Game) *memGameRepo {
	r := &memGameRepo{games: make(map[string]models.Game)}
	for _, g := range games {
		r.games[g.GameID] = g
	}
	return r
}

func (r *memGameRepo) GetAll(ctx context.Context) ([]models.Game, error) {
	all := make([]models.Game, 0, len(r.games))
	for _, g := range r.games {
		all = append(all, g)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].GameID < all[j].GameID })
	return all, nil
}

func (r *memGameRepo) GetByID(ctx context.Context, gameID string) (*models.Game, error) {
	g, ok := r.games[gameID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &g, nil
}

func (r *memGameRepo) CreateIfAbsent(ctx context.Context, game *models.Game) (bool, error) {
	if _, ok := r.games[game.GameID]; ok {
		return false, nil
	}
	r.games[game.GameID] = *game
	return true, nil
}

func (r *memGameRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.games)), nil
}

type memRatingRepo struct {
	ratings []models.Rating
	games   *memGameRepo
	nextID  int64
}

func newMemRatingRepo(games *memGameRepo) *memRatingRepo {
	return &memRatingRepo{games: games, nextID: 1}
}

func (r *memRatingRepo) Create(ctx context.Context, rating *models.Rating) error {
	for _, existing := range r.ratings {
		if existing.UserID == rating.UserID && existing.GameID == rating.GameID {
			return gorm.ErrDuplicatedKey
		}
	}
	rating.ID = r.nextID
	r.nextID++
	rating.CreatedAt = time.Now()
	r.ratings = append(r.ratings, *rating)
	return nil
}

func (r *memRatingRepo) GetByUserAndGame(ctx context.Context, userID, gameID string) (*models.Rating, error) {
	for _, rt := range r.ratings {
		if rt.UserID == userID && rt.GameID == gameID {
			return &rt, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memRatingRepo) GetByUser(ctx context.Context, userID string) ([]models.Rating, error) {
	var out []models.Rating
	for _, rt := range r.ratings {
		if rt.UserID != userID {
			continue
		}
		if r.games != nil {
			if g, ok := r.games.games[rt.GameID]; ok {
				rt.Game = g
			}
		}
		out = append(out, rt)
	}
	return out, nil
}

func (r *memRatingRepo) Average(ctx context.Context, gameID string) (*float64, error) {
	sum, n := 0, 0
	for _, rt := range r.ratings {
		if rt.GameID == gameID {
			sum += rt.Score
			n++
		}
	}
	if n == 0 {
		return nil, nil
	}
	avg := float64(sum) / float64(n)
	return &avg, nil
}

func (r *memRatingRepo) Count(ctx context.Context, gameID string) (int64, error) {
	var n int64
	for _, rt := range r.ratings {
		if rt.GameID == gameID {
			n++
		}
	}
	return n, nil
}

func (r *memRatingRepo) AverageByUser(ctx context.Context, userID string) (*float64, error) {
	sum, n := 0, 0
	for _, rt := range r.ratings {
		if rt.UserID == userID {
			sum += rt.Score
			n++
		}
	}
	if n == 0 {
		return nil, nil
	}
	avg := float64(sum) / float64(n)
	return &avg, nil
}

func (r *memRatingRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	for _, rt := range r.ratings {
		if rt.UserID == userID {
			n++
		}
	}
	return n, nil
}

type memCommentRepo struct {
	comments []models.Comment
	users    map[string]models.User
	games    *memGameRepo
	nextID   int64
	clock    time.Time
}

func newMemCommentRepo(games *memGameRepo, users ...models.User) *memCommentRepo {
	r := &memCommentRepo{
		games:  games,
		users:  make(map[string]models.User),
		nextID: 1,
		clock:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *memCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	comment.ID = r.nextID
	r.nextID++
	// strictly increasing timestamps so newest-first ordering is testable
	r.clock = r.clock.Add(time.Minute)
	comment.CreatedAt = r.clock
	r.comments = append(r.comments, *comment)
	return nil
}

func (r *memCommentRepo) GetByID(ctx context.Context, commentID int64) (*models.Comment, error) {
	for _, c := range r.comments {
		if c.ID == commentID {
			c.User = r.users[c.UserID]
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memCommentRepo) GetByGame(ctx context.Context, gameID string) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range r.comments {
		if c.GameID != gameID {
			continue
		}
		c.User = r.users[c.UserID]
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memCommentRepo) GetByUser(ctx context.Context, userID string) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range r.comments {
		if c.UserID != userID {
			continue
		}
		if r.games != nil {
			if g, ok := r.games.games[c.GameID]; ok {
				c.Game = g
			}
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memCommentRepo) CountByGame(ctx context.Context, gameID string) (int64, error) {
	var n int64
	for _, c := range r.comments {
		if c.GameID == gameID {
			n++
		}
	}
	return n, nil
}

func (r *memCommentRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	for _, c := range r.comments {
		if c.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *memCommentRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.comments)), nil
}

type memVoteRepo struct {
	votes  []models.CommentVote
	nextID int64
}

func newMemVoteRepo() *memVoteRepo {
	return &memVoteRepo{nextID: 1}
}

func (r *memVoteRepo) Create(ctx context.Context, vote *models.CommentVote) error {
	for _, v := range r.votes {
		if v.UserID == vote.UserID && v.CommentID == vote.CommentID {
			return gorm.ErrDuplicatedKey
		}
	}
	vote.ID = r.nextID
	r.nextID++
	r.votes = append(r.votes, *vote)
	return nil
}

func (r *memVoteRepo) GetByUserAndComment(ctx context.Context, userID string, commentID int64) (*models.CommentVote, error) {
	for _, v := range r.votes {
		if v.UserID == userID && v.CommentID == commentID {
			return &v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memVoteRepo) UpdateKind(ctx context.Context, voteID int64, kind string) error {
	for i := range r.votes {
		if r.votes[i].ID == voteID {
			r.votes[i].Kind = kind
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memVoteRepo) CountByKind(ctx context.Context, commentID int64, kind string) (int64, error) {
	var n int64
	for _, v := range r.votes {
		if v.CommentID == commentID && v.Kind == kind {
			n++
		}
	}
	return n, nil
}

type memFollowRepo struct {
	follows []models.Follow
	games   *memGameRepo
	nextID  int64
}

func newMemFollowRepo(games *memGameRepo) *memFollowRepo {
	return &memFollowRepo{games: games, nextID: 1}
}

func (r *memFollowRepo) Create(ctx context.Context, userID, gameID string) error {
	for _, f := range r.follows {
		if f.UserID == userID && f.GameID == gameID {
			return gorm.ErrDuplicatedKey
		}
	}
	r.follows = append(r.follows, models.Follow{ID: r.nextID, UserID: userID, GameID: gameID})
	r.nextID++
	return nil
}

func (r *memFollowRepo) Delete(ctx context.Context, userID, gameID string) error {
	for i, f := range r.follows {
		if f.UserID == userID && f.GameID == gameID {
			r.follows = append(r.follows[:i], r.follows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memFollowRepo) Exists(ctx context.Context, userID, gameID string) (bool, error) {
	for _, f := range r.follows {
		if f.UserID == userID && f.GameID == gameID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memFollowRepo) GetByUser(ctx context.Context, userID string) ([]models.Follow, error) {
	var out []models.Follow
	for _, f := range r.follows {
		if f.UserID != userID {
			continue
		}
		if r.games != nil {
			if g, ok := r.games.games[f.GameID]; ok {
				f.Game = &g
			}
		}
		out = append(out, f)
	}
	return out, nil
}

func (r *memFollowRepo) FollowedGameIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	for _, f := range r.follows {
		if f.UserID == userID {
			ids = append(ids, f.GameID)
		}
	}
	return ids, nil
}

type memSettingsRepo struct {
	settings    map[string]*models.UserSettings
	createCalls int
	saveCalls   int
	nextID      int64
}

func newMemSettingsRepo() *memSettingsRepo {
	return &memSettingsRepo{settings: make(map[string]*models.UserSettings), nextID: 1}
}

func (r *memSettingsRepo) GetByUser(ctx context.Context, userID string) (*models.UserSettings, error) {
	s, ok := r.settings[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *memSettingsRepo) Create(ctx context.Context, settings *models.UserSettings) error {
	r.createCalls++
	settings.ID = r.nextID
	r.nextID++
	copied := *settings
	r.settings[settings.UserID] = &copied
	return nil
}

func (r *memSettingsRepo) Save(ctx context.Context, settings *models.UserSettings) error {
	r.saveCalls++
	copied := *settings
	r.settings[settings.UserID] = &copied
	return nil
}

type memRefreshTokenRepo struct {
	tokens map[string]*models.RefreshToken
}

func newMemRefreshTokenRepo() *memRefreshTokenRepo {
	return &memRefreshTokenRepo{tokens: make(map[string]*models.RefreshToken)}
}

func (r *memRefreshTokenRepo) Create(ctx context.Context, refreshToken *models.RefreshToken) error {
	copied := *refreshToken
	r.tokens[refreshToken.ID] = &copied
	return nil
}

func (r *memRefreshTokenRepo) FindByToken(ctx context.Context, tokenString string) (*models.RefreshToken, error) {
	for _, t := range r.tokens {
		if t.Token == tokenString {
			copied := *t
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memRefreshTokenRepo) Revoke(ctx context.Context, tokenID string) error {
	t, ok := r.tokens[tokenID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.Revoked = true
	return nil
}

func (r *memRefreshTokenRepo) Delete(ctx context.Context, tokenID string) error {
	delete(r.tokens, tokenID)
	return nil
}

type memUserRepo struct {
	users map[string]models.User
}

func newMemUserRepo(users ...models.User) *memUserRepo {
	r := &memUserRepo{users: make(map[string]models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *memUserRepo) Create(ctx context.Context, user *models.User) error {
	r.users[user.ID] = *user
	return nil
}

func (r *memUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *memUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
