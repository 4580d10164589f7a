package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/meeplehub/api/internal/database"
	"github.com/meeplehub/api/internal/model"
)

func newUserService(users *mockUserRepo, favorites *mockFavoriteRepo, reviews *mockReviewRepo, games *mockGameRepo) *UserService {
	if users == nil {
		users = &mockUserRepo{}
	}
	if favorites == nil {
		favorites = &mockFavoriteRepo{}
	}
	if reviews == nil {
		reviews = &mockReviewRepo{}
	}
	if games == nil {
		games = &mockGameRepo{}
	}
	return NewUserService(UserServiceConfig{
		Users:     users,
		Favorites: favorites,
		Reviews:   reviews,
		Games:     games,
		Tokens:    &mockTokenIssuer{},
	})
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return string(hash)
}

func TestSignUp_Success(t *testing.T) {
	t.Parallel()

	created := false
	users := &mockUserRepo{
		createFunc: func(ctx context.Context, user *model.User) error {
			created = true
			user.ID = "user:new"
			return nil
		},
	}

	svc := newUserService(users, nil, nil, nil)

	user, err := svc.SignUp(context.Background(), &model.SignUpRequest{
		LoginID:  "meeple01",
		Nickname: "dice_roller",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("expected user to be created")
	}
	if user.ID != "user:new" {
		t.Errorf("expected id user:new, got %s", user.ID)
	}
	if user.Hash == "" || user.Hash == "correct horse" {
		t.Error("password should be stored hashed")
	}
}

func TestSignUp_DuplicateLoginID(t *testing.T) {
	t.Parallel()

	created := false
	users := &mockUserRepo{
		getByLoginIDFunc: func(ctx context.Context, loginID string) (*model.User, error) {
			return &model.User{ID: "user:existing", LoginID: loginID}, nil
		},
		createFunc: func(ctx context.Context, user *model.User) error {
			created = true
			return nil
		},
	}

	svc := newUserService(users, nil, nil, nil)

	_, err := svc.SignUp(context.Background(), &model.SignUpRequest{
		LoginID:  "meeple01",
		Nickname: "dice_roller",
		Password: "correct horse",
	})
	if !errors.Is(err, ErrLoginIDTaken) {
		t.Errorf("expected ErrLoginIDTaken, got %v", err)
	}
	if created {
		t.Error("duplicate signup must not create a user")
	}
}

func TestSignUp_WithdrawnLoginIDIsReusable(t *testing.T) {
	t.Parallel()

	users := &mockUserRepo{
		getByLoginIDFunc: func(ctx context.Context, loginID string) (*model.User, error) {
			return &model.User{ID: "user:old", LoginID: loginID, Withdraw: true}, nil
		},
	}

	svc := newUserService(users, nil, nil, nil)

	_, err := svc.SignUp(context.Background(), &model.SignUpRequest{
		LoginID:  "meeple01",
		Nickname: "dice_roller",
		Password: "correct horse",
	})
	if err != nil {
		t.Errorf("withdrawn login id should be reusable, got %v", err)
	}
}

func TestSignUp_DuplicateNickname(t *testing.T) {
	t.Parallel()

	users := &mockUserRepo{
		getByNicknameFunc: func(ctx context.Context, nickname string) (*model.User, error) {
			return &model.User{ID: "user:existing", Nickname: nickname}, nil
		},
	}

	svc := newUserService(users, nil, nil, nil)

	_, err := svc.SignUp(context.Background(), &model.SignUpRequest{
		LoginID:  "meeple01",
		Nickname: "dice_roller",
		Password: "correct horse",
	})
	if !errors.Is(err, ErrNicknameTaken) {
		t.Errorf("expected ErrNicknameTaken, got %v", err)
	}
}

func TestSignUp_PasswordValidation(t *testing.T) {
	t.Parallel()

	svc := newUserService(nil, nil, nil, nil)

	tests := []struct {
		name     string
		password string
		want     error
	}{
		{"empty", "", ErrPasswordRequired},
		{"too short", "short", ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignUp(context.Background(), &model.SignUpRequest{
				LoginID:  "meeple01",
				Nickname: "dice_roller",
				Password: tt.password,
			})
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSignUp_StoreGuardDistinguishesDuplicateKey(t *testing.T) {
	t.Parallel()

	// The pre-checks pass (no existing user), but the transactional
	// guard inside Create rejects the write, as it would when two
	// sign-ups race.
	tests := []struct {
		name string
		key  string
		want error
	}{
		{"login id", "login_id", ErrLoginIDTaken},
		{"nickname", "nickname", ErrNicknameTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUserRepo{
				createFunc: func(ctx context.Context, user *model.User) error {
					return &database.DuplicateError{Key: tt.key}
				},
			}

			svc := newUserService(users, nil, nil, nil)

			_, err := svc.SignUp(context.Background(), &model.SignUpRequest{
				LoginID:  "meeple01",
				Nickname: "dice_roller",
				Password: "correct horse",
			})
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	hash := hashPassword(t, "correct horse")
	users := &mockUserRepo{
		getByLoginIDFunc: func(ctx context.Context, loginID string) (*model.User, error) {
			return &model.User{ID: "user:alice", LoginID: loginID, Nickname: "dice_roller", Hash: hash}, nil
		},
	}

	svc := newUserService(users, nil, nil, nil)

	result, err := svc.Login(context.Background(), &model.LoginRequest{
		LoginID:  "meeple01",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Nickname != "dice_roller" {
		t.Errorf("expected nickname dice_roller, got %s", result.Nickname)
	}
	if result.AccessToken == "" {
		t.Error("expected an access token")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	hash := hashPassword(t, "correct horse")
	users := &mockUserRepo{
		getByLoginIDFunc: func(ctx context.Context, loginID string) (*model.User, error) {
			return &model.User{ID: "user:alice", Hash: hash}, nil
		},
	}

	svc := newUserService(users, nil, nil, nil)

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		LoginID:  "meeple01",
		Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	t.Parallel()

	svc := newUserService(nil, nil, nil, nil)

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		LoginID:  "ghost",
		Password: "whatever1",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_WithdrawnAccount(t *testing.T) {
	t.Parallel()

	users := &mockUserRepo{
		getByLoginIDFunc: func(ctx context.Context, loginID string) (*model.User, error) {
			return &model.User{ID: "user:gone", Withdraw: true}, nil
		},
	}

	svc := newUserService(users, nil, nil, nil)

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		LoginID:  "meeple01",
		Password: "correct horse",
	})
	if !errors.Is(err, ErrUserWithdrawn) {
		t.Errorf("expected ErrUserWithdrawn, got %v", err)
	}
}

func TestUpdateInfo_NicknameTaken(t *testing.T) {
	t.Parallel()

	users := &mockUserRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.User, error) {
			return &model.User{ID: id, Nickname: "old_nick"}, nil
		},
		getByNicknameFunc: func(ctx context.Context, nickname string) (*model.User, error) {
			return &model.User{ID: "user:other", Nickname: nickname}, nil
		},
	}

	svc := newUserService(users, nil, nil, nil)

	_, err := svc.UpdateInfo(context.Background(), "user:alice", &model.UpdateInfoRequest{
		Nickname: "new_nick",
	})
	if !errors.Is(err, ErrNicknameTaken) {
		t.Errorf("expected ErrNicknameTaken, got %v", err)
	}
}

func TestUpdateInfo_KeepingOwnNickname(t *testing.T) {
	t.Parallel()

	users := &mockUserRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.User, error) {
			return &model.User{ID: id, Nickname: "same_nick"}, nil
		},
		getByNicknameFunc: func(ctx context.Context, nickname string) (*model.User, error) {
			t.Error("uniqueness check should be skipped for unchanged nickname")
			return nil, nil
		},
	}

	svc := newUserService(users, nil, nil, nil)

	user, err := svc.UpdateInfo(context.Background(), "user:alice", &model.UpdateInfoRequest{
		Nickname: "same_nick",
		Age:      30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Age != 30 {
		t.Errorf("expected age 30, got %d", user.Age)
	}
}

func TestUpdateInfo_StoreGuardRejectsTakenNickname(t *testing.T) {
	t.Parallel()

	users := &mockUserRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.User, error) {
			return &model.User{ID: id, Nickname: "old_nick"}, nil
		},
		updateInfoFunc: func(ctx context.Context, user *model.User) error {
			return &database.DuplicateError{Key: "nickname"}
		},
	}

	svc := newUserService(users, nil, nil, nil)

	_, err := svc.UpdateInfo(context.Background(), "user:alice", &model.UpdateInfoRequest{
		Nickname: "new_nick",
	})
	if !errors.Is(err, ErrNicknameTaken) {
		t.Errorf("expected ErrNicknameTaken, got %v", err)
	}
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	t.Parallel()

	hash := hashPassword(t, "correct horse")
	updated := false
	users := &mockUserRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.User, error) {
			return &model.User{ID: id, Hash: hash}, nil
		},
		updatePasswordFunc: func(ctx context.Context, userID, hash string) error {
			updated = true
			return nil
		},
	}

	svc := newUserService(users, nil, nil, nil)

	err := svc.ChangePassword(context.Background(), "user:alice", &model.ChangePasswordRequest{
		Password:    "wrong",
		NewPassword: "new password 1",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if updated {
		t.Error("password must not change when verification fails")
	}
}

func TestWithdraw_UnknownUser(t *testing.T) {
	t.Parallel()

	svc := newUserService(nil, nil, nil, nil)

	if err := svc.Withdraw(context.Background(), "user:ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	t.Parallel()

	svc := newUserService(nil, nil, nil, nil)

	if _, err := svc.GetProfile(context.Background(), "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAddFavorite_AlreadyFavorited(t *testing.T) {
	t.Parallel()

	users := &mockUserRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.User, error) {
			return &model.User{ID: id}, nil
		},
	}
	games := &mockGameRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Game, error) {
			return &model.Game{ID: id, Name: "Catan"}, nil
		},
	}
	created := false
	favorites := &mockFavoriteRepo{
		getByUserAndGameFunc: func(ctx context.Context, userID, gameID string) (*model.Favorite, error) {
			return &model.Favorite{ID: "favorite:x", UserID: userID, GameID: gameID}, nil
		},
		createFunc: func(ctx context.Context, favorite *model.Favorite) error {
			created = true
			return nil
		},
	}

	svc := newUserService(users, favorites, nil, games)

	err := svc.AddFavorite(context.Background(), "user:alice", &model.AddFavoriteRequest{GameID: "game:catan"})
	if !errors.Is(err, ErrAlreadyFavorited) {
		t.Errorf("expected ErrAlreadyFavorited, got %v", err)
	}
	if created {
		t.Error("duplicate favorite must not be created")
	}
}

func TestAddFavorite_UnknownGame(t *testing.T) {
	t.Parallel()

	users := &mockUserRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.User, error) {
			return &model.User{ID: id}, nil
		},
	}

	svc := newUserService(users, nil, nil, nil)

	err := svc.AddFavorite(context.Background(), "user:alice", &model.AddFavoriteRequest{GameID: "game:ghost"})
	if !errors.Is(err, ErrGameNotFound) {
		t.Errorf("expected ErrGameNotFound, got %v", err)
	}
}

func TestRemoveFavorite_SecondDeleteFails(t *testing.T) {
	t.Parallel()

	svc := newUserService(nil, &mockFavoriteRepo{}, nil, nil)

	err := svc.RemoveFavorite(context.Background(), "user:alice", "game:catan")
	if !errors.Is(err, ErrFavoriteNotFound) {
		t.Errorf("expected ErrFavoriteNotFound, got %v", err)
	}
}

func TestGetFavorites_Pagination(t *testing.T) {
	t.Parallel()

	users := &mockUserRepo{
		getByNicknameFunc: func(ctx context.Context, nickname string) (*model.User, error) {
			return &model.User{ID: "user:alice", Nickname: nickname}, nil
		},
	}

	var gotLimit, gotOffset int
	favorites := &mockFavoriteRepo{
		countByUserFunc: func(ctx context.Context, userID string) (int, error) {
			return 25, nil
		},
		listByUserFunc: func(ctx context.Context, userID string, limit, offset int) ([]*model.FavoriteGame, error) {
			gotLimit, gotOffset = limit, offset
			return []*model.FavoriteGame{{GameID: "game:catan", GameName: "Catan"}}, nil
		},
	}

	svc := newUserService(users, favorites, nil, nil)

	page, err := svc.GetFavorites(context.Background(), "dice_roller", 3, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalPage != 3 {
		t.Errorf("expected 3 total pages for 25 items, got %d", page.TotalPage)
	}
	if page.NowPage != 3 {
		t.Errorf("expected now page 3, got %d", page.NowPage)
	}
	if gotLimit != 10 || gotOffset != 20 {
		t.Errorf("expected limit 10 offset 20, got %d/%d", gotLimit, gotOffset)
	}
}

func TestGetFavorites_EmptySkipsListing(t *testing.T) {
	t.Parallel()

	users := &mockUserRepo{
		getByNicknameFunc: func(ctx context.Context, nickname string) (*model.User, error) {
			return &model.User{ID: "user:alice", Nickname: nickname}, nil
		},
	}
	favorites := &mockFavoriteRepo{
		listByUserFunc: func(ctx context.Context, userID string, limit, offset int) ([]*model.FavoriteGame, error) {
			t.Error("listing should be skipped when count is zero")
			return nil, nil
		},
	}

	svc := newUserService(users, favorites, nil, nil)

	page, err := svc.GetFavorites(context.Background(), "dice_roller", 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalPage != 0 {
		t.Errorf("expected 0 total pages, got %d", page.TotalPage)
	}
	if len(page.List) != 0 {
		t.Errorf("expected empty list, got %d items", len(page.List))
	}
}

func TestGetFavorites_PageBeyondEnd(t *testing.T) {
	t.Parallel()

	users := &mockUserRepo{
		getByNicknameFunc: func(ctx context.Context, nickname string) (*model.User, error) {
			return &model.User{ID: "user:alice", Nickname: nickname}, nil
		},
	}
	favorites := &mockFavoriteRepo{
		countByUserFunc: func(ctx context.Context, userID string) (int, error) {
			return 25, nil
		},
		listByUserFunc: func(ctx context.Context, userID string, limit, offset int) ([]*model.FavoriteGame, error) {
			return []*model.FavoriteGame{}, nil
		},
	}

	svc := newUserService(users, favorites, nil, nil)

	page, err := svc.GetFavorites(context.Background(), "dice_roller", 9, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalPage != 3 || page.NowPage != 9 {
		t.Errorf("expected totalPage=3 nowPage=9, got %d/%d", page.TotalPage, page.NowPage)
	}
	if len(page.List) != 0 {
		t.Errorf("expected empty page past the end, got %d items", len(page.List))
	}
}

func TestGetReviewsByNickname_UnknownUser(t *testing.T) {
	t.Parallel()

	svc := newUserService(nil, nil, nil, nil)

	_, err := svc.GetReviewsByNickname(context.Background(), "ghost", 1, 10)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
