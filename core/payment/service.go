package payment

import (
	"context"
	"fmt"
	"math"
	"net/mail"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/pichalabs/picha/core"
	"github.com/pichalabs/picha/core/selection"
)

var (
	// errors
	ErrProcessor = errors.New("payment processor failure")
)

const defaultCurrency = "usd"

type (
	Repository interface {
		CreatePayment(ctx context.Context, rec Record) (core.InsertResult, error)
		QueryAllPayments(ctx context.Context) ([]Record, error)
	}

	// Transactor runs fn atomically when the underlying store supports
	// multi-document transactions.
	Transactor interface {
		WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	}

	Service struct {
		repo        Repository
		selRepo     selection.Repository
		gateway     core.PaymentGateway
		txn         Transactor // nil: insert + clear are attempted independently
		mailSvc     core.EmailService
		frontendURL string
	}
)

func NewService(conf *core.Config, repo Repository, selRepo selection.Repository, gateway core.PaymentGateway, txn Transactor, mailSvc core.EmailService) *Service {
	return &Service{
		repo:        repo,
		selRepo:     selRepo,
		gateway:     gateway,
		txn:         txn,
		mailSvc:     mailSvc,
		frontendURL: conf.FrontendBaseURL,
	}
}

// CreateIntent converts a decimal price to its minor-unit amount and requests
// a payment authorization from the processor. The returned client secret lets
// the caller complete the charge on a separate channel.
func (svc *Service) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(math.Round(price * 100))
	secret, err := svc.gateway.CreateIntent(ctx, amount, defaultCurrency)
	if err != nil {
		return "", errors.Wrapf(ErrProcessor, "creating payment intent: %v", err)
	}
	return secret, nil
}

// Record inserts the payment record and clears every selection entry named
// in its SelectItems. With a Transactor the pair commits atomically;
// without one both operations are attempted and both outcomes reported.
func (svc *Service) Record(ctx context.Context, np NewPayment) (RecordResult, error) {
	rec := Record{
		Email:         np.Email,
		TransactionID: np.TransactionID,
		Amount:        np.Amount,
		SelectItems:   np.SelectItems,
		ClassNames:    np.ClassNames,
		Date:          time.Now().UTC(),
	}

	var res RecordResult
	run := func(ctx context.Context) error {
		var err error
		if res.InsertResult, err = svc.repo.CreatePayment(ctx, rec); err != nil {
			return errors.Wrap(err, "inserting payment record")
		}
		if res.DeleteResult, err = svc.selRepo.DeleteEntriesByID(ctx, rec.SelectItems); err != nil {
			return errors.Wrap(err, "clearing purchased selections")
		}
		return nil
	}

	var err error
	if svc.txn != nil {
		err = svc.txn.WithTransaction(ctx, run)
	} else {
		err = run(ctx)
		if err != nil && res.InsertResult.InsertedID != "" {
			// the record committed but the purchased entries were not
			// cleared; the store is inconsistent and repeat charges become
			// possible
			return res, errors.Wrap(core.NewShutdownError(err.Error()), "payment store integrity")
		}
	}
	if err != nil {
		return res, err
	}

	svc.sendReceipt(rec)
	return res, nil
}

// History returns all payment records unfiltered.
func (svc *Service) History(ctx context.Context) ([]Record, error) {
	return svc.repo.QueryAllPayments(ctx)
}

func (svc *Service) sendReceipt(rec Record) {
	if svc.mailSvc == nil {
		return
	}
	body := fmt.Sprintf(
		"Your payment of $%.2f has been received.\r\n\r\nClasses: %s\r\nTransaction: %s\r\nDate: %s\r\n\r\nYour payment history: %s/dashboard/payment-history\r\n",
		rec.Amount,
		strings.Join(rec.ClassNames, ", "),
		rec.TransactionID,
		rec.Date.Format(time.RFC1123),
		svc.frontendURL,
	)
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Address: rec.Email}},
		Subject: "Payment received",
		BodyStr: body,
	})
}
