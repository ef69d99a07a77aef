package midtrans

import (
	"github.com/pibich/Akivili-UAS/internal/utils"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

type (
	MidtransService interface {
		CreateTransaction(orderID string, grossAmount int64, email string) (string, error)
		// CheckTransaction reports whether the gateway considers the
		// order settled, together with the payment type used.
		CheckTransaction(orderID string) (bool, string, error)
	}

	midtransService struct {
		snapClient snap.Client
		coreClient coreapi.Client
	}
)

func NewMidtransService() MidtransService {
	serverKey := utils.GetConfig("SERVER_KEY")
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	s := snap.Client{}
	s.New(serverKey, env)
	c := coreapi.Client{}
	c.New(serverKey, env)

	return &midtransService{
		snapClient: s,
		coreClient: c,
	}
}

func (m *midtransService) CreateTransaction(orderID string, grossAmount int64, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: grossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: email,
		},
	}

	resp, midErr := m.snapClient.CreateTransaction(req)
	if midErr != nil {
		return "", midErr
	}
	return resp.RedirectURL, nil
}

func (m *midtransService) CheckTransaction(orderID string) (bool, string, error) {
	resp, midErr := m.coreClient.CheckTransaction(orderID)
	if midErr != nil {
		return false, "", midErr
	}

	settled := resp.TransactionStatus == "settlement" ||
		(resp.TransactionStatus == "capture" && resp.FraudStatus == "accept")
	return settled, resp.PaymentType, nil
}
