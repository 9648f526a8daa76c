//go:build unit

package readstore

import (
	"context"
	"testing"

	"ticket-marketplace/internal/domain/user"
	"ticket-marketplace/internal/infra"
	"ticket-marketplace/internal/infra/sqlq"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUserByID(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (sqlq.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlq.Users), args.Error(1)
}

func TestFindProfileByID(t *testing.T) {
	sellerID := uuid.New()
	onboarded := sqlq.Users{
		ID:                sellerID,
		Name:              "Asha Rao",
		Email:             "asha@example.com",
		Phone:             pgtype.Text{String: "+919876543210", Valid: true},
		Role:              "seller",
		RazorpayContactID: pgtype.Text{String: "cont_abc123", Valid: true},
		RazorpayAccountID: pgtype.Text{String: "acc_Abc123XYZ", Valid: true},
	}

	tests := []struct {
		name          string
		mockReturn    sqlq.Users
		mockError     error
		wantOnboarded bool
		wantKind      infra.RepositoryErrorKind
		wantError     bool
	}{
		{
			name:          "success - onboarded seller",
			mockReturn:    onboarded,
			wantOnboarded: true,
		},
		{
			name: "success - seller without account",
			mockReturn: sqlq.Users{
				ID:    sellerID,
				Name:  "Asha Rao",
				Email: "asha@example.com",
				Role:  "seller",
			},
			wantOnboarded: false,
		},
		{
			name:       "error - user not found",
			mockReturn: sqlq.Users{},
			mockError:  pgx.ErrNoRows,
			wantKind:   infra.KindNotFound,
			wantError:  true,
		},
		{
			name:       "error - unknown role stored",
			mockReturn: sqlq.Users{ID: sellerID, Email: "asha@example.com", Role: "owner"},
			wantKind:   infra.KindDBFailure,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("GetUserByID", mock.Anything, mock.Anything, sellerID).Return(tt.mockReturn, tt.mockError)

			store := NewUserReadStore(mockQueries, nil)

			profile, err := store.FindProfileByID(context.Background(), sellerID)

			if tt.wantError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, profile)
			} else {
				require.NoError(t, err)
				assert.Equal(t, sellerID, profile.ID())
				assert.Equal(t, user.RoleSeller, profile.Role())
				assert.Equal(t, tt.wantOnboarded, profile.IsOnboarded())
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
