package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/fiscledger/internal/domain"
	"github.com/iho/fiscledger/internal/usecase"
	"github.com/iho/fiscledger/internal/usecase/mocks"
)

func newAccountUseCase(t *testing.T) (*usecase.AccountUseCase, *mocks.MockAccountRepository, *mocks.MockThirdPartyRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountRepository(ctrl)
	thirdParties := mocks.NewMockThirdPartyRepository(ctrl)

	idGen := mocks.NewMockIDGenerator(ctrl)
	idGen.EXPECT().Generate().Return("acc-new").AnyTimes()

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(fixedNow).AnyTimes()

	return usecase.NewAccountUseCase(accounts, thirdParties, idGen, clock), accounts, thirdParties
}

func TestAccountUseCase_CreateAccount(t *testing.T) {
	uc, accounts, _ := newAccountUseCase(t)

	accounts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	account, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{
		Number: " 512 ",
		Label:  "Banque",
	})
	require.NoError(t, err)
	assert.Equal(t, "512", account.Number)
	assert.True(t, account.AcceptsLines())
}

func TestAccountUseCase_CreateAccount_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.CreateAccountInput
		wantErr error
	}{
		{name: "class 8", input: usecase.CreateAccountInput{Number: "801", Label: "Off chart"}, wantErr: domain.ErrInvalidAccountNumber},
		{name: "letters", input: usecase.CreateAccountInput{Number: "51A", Label: "Bank"}, wantErr: domain.ErrInvalidAccountNumber},
		{name: "no label", input: usecase.CreateAccountInput{Number: "512", Label: " "}, wantErr: domain.ErrInvalidLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _ := newAccountUseCase(t)

			_, err := uc.CreateAccount(context.Background(), tt.input)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAccountUseCase_CreateThirdParty(t *testing.T) {
	t.Run("valid supplier", func(t *testing.T) {
		uc, _, thirdParties := newAccountUseCase(t)

		thirdParties.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		tp, err := uc.CreateThirdParty(context.Background(), usecase.CreateThirdPartyInput{
			Code: "F001",
			Name: "Sonelgaz",
			Type: domain.ThirdPartySupplier,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ThirdPartySupplier, tp.Type)
	})

	t.Run("unknown type", func(t *testing.T) {
		uc, _, _ := newAccountUseCase(t)

		_, err := uc.CreateThirdParty(context.Background(), usecase.CreateThirdPartyInput{
			Code: "X1",
			Name: "Someone",
			Type: "partner",
		})
		require.ErrorIs(t, err, domain.ErrInvalidThirdParty)
	})
}
