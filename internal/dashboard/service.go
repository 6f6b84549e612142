package dashboard

import (
	"context"

	apperrors "github.com/autogirlng/muvment-customer-sub002/pkg/errors"
	"github.com/autogirlng/muvment-customer-sub002/pkg/gateway"
	"github.com/autogirlng/muvment-customer-sub002/pkg/logger"
	"github.com/autogirlng/muvment-customer-sub002/pkg/model"
	"github.com/autogirlng/muvment-customer-sub002/pkg/sanitizer"
)

// AccountGateway is the slice of the remote API behind the dashboard's
// profile and favourites panels. *gateway.AccountClient satisfies it.
type AccountGateway interface {
	GetProfile(ctx context.Context, token string) (*gateway.Result, error)
	UpdateProfile(ctx context.Context, update *model.ProfileUpdate, token string) (*gateway.Result, error)
	ListFavourites(ctx context.Context, token string, page, size int) (*gateway.Result, error)
	AddFavourite(ctx context.Context, vehicleID, token string) (*gateway.Result, error)
	RemoveFavourite(ctx context.Context, vehicleID, token string) (*gateway.Result, error)
	DecodeUser(res *gateway.Result) (*model.User, error)
}

// BookingLister lists the customer's past bookings.
type BookingLister interface {
	List(ctx context.Context, token string, page, size int) (*gateway.Result, error)
	DecodeBookings(res *gateway.Result) ([]*model.Booking, *gateway.PageMeta, error)
}

type Service struct {
	accounts AccountGateway
	bookings BookingLister
	log      *logger.Logger
}

func NewService(accounts AccountGateway, bookings BookingLister, log *logger.Logger) *Service {
	return &Service{
		accounts: accounts,
		bookings: bookings,
		log:      log,
	}
}

func (s *Service) Profile(ctx context.Context, token string) (*model.User, error) {
	res, err := s.accounts.GetProfile(ctx, token)
	if err != nil {
		return nil, err
	}
	if res.Err {
		return nil, apperrors.Upstream(res.Message, nil)
	}
	return s.accounts.DecodeUser(res)
}

func (s *Service) UpdateProfile(ctx context.Context, update *model.ProfileUpdate, token string) (*model.User, error) {
	update.FirstName = sanitizer.NormalizeName(update.FirstName)
	update.LastName = sanitizer.NormalizeName(update.LastName)
	if update.Phone != "" {
		update.Phone = sanitizer.NormalizePhone(update.Phone)
	}

	res, err := s.accounts.UpdateProfile(ctx, update, token)
	if err != nil {
		return nil, err
	}
	if res.Err {
		return nil, apperrors.Upstream(res.Message, nil)
	}
	return s.accounts.DecodeUser(res)
}

func (s *Service) Favourites(ctx context.Context, token string, page, size int) ([]*model.Vehicle, *gateway.PageMeta, error) {
	res, err := s.accounts.ListFavourites(ctx, token, page, size)
	if err != nil {
		return nil, nil, err
	}
	if res.Err {
		return nil, nil, apperrors.Upstream(res.Message, nil)
	}

	var vehicles []*model.Vehicle
	meta, err := res.DecodePage(&vehicles)
	if err != nil {
		return nil, nil, apperrors.Internal("Failed to decode favourites", err)
	}
	return vehicles, meta, nil
}

func (s *Service) AddFavourite(ctx context.Context, vehicleID, token string) error {
	if vehicleID == "" {
		return apperrors.InvalidInput("A vehicle id is required")
	}
	res, err := s.accounts.AddFavourite(ctx, vehicleID, token)
	if err != nil {
		return err
	}
	if res.Err {
		return apperrors.Upstream(res.Message, nil)
	}
	return nil
}

func (s *Service) RemoveFavourite(ctx context.Context, vehicleID, token string) error {
	res, err := s.accounts.RemoveFavourite(ctx, vehicleID, token)
	if err != nil {
		return err
	}
	if res.Err {
		return apperrors.Upstream(res.Message, nil)
	}
	return nil
}

func (s *Service) Bookings(ctx context.Context, token string, page, size int) ([]*model.Booking, *gateway.PageMeta, error) {
	res, err := s.bookings.List(ctx, token, page, size)
	if err != nil {
		return nil, nil, err
	}
	if res.Err {
		return nil, nil, apperrors.Upstream(res.Message, nil)
	}
	return s.bookings.DecodeBookings(res)
}
