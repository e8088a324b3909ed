package billing

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

// Valores mensais por plano, em BRL. O ciclo anual aplica 12x com
// dois meses de desconto.
var planPrices = map[string]float64{
	"starter":    49,
	"growth":     99,
	"clinic":     199,
	"enterprise": 399,
}

type Checkout struct {
	PreferenceID string
	URL          string
}

type Client struct {
	prefs preference.Client
}

// New retorna nil quando não há token configurado; o handler trata
// nil como "cobrança online desabilitada" (resta transferência bancária).
func New(accessToken string) (*Client, error) {
	if accessToken == "" {
		return nil, nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &Client{prefs: preference.NewClient(cfg)}, nil
}

func PlanAmount(planType, billingCycle string) (float64, error) {
	monthly, ok := planPrices[planType]
	if !ok {
		return 0, fmt.Errorf("unknown plan %q", planType)
	}

	if billingCycle == "annual" {
		return monthly * 10, nil
	}
	return monthly, nil
}

// CreateCheckout cria uma preferência de pagamento e devolve o link
// de checkout para a fatura da assinatura.
func (c *Client) CreateCheckout(
	ctx context.Context,
	clinicName string,
	planType string,
	billingCycle string,
	externalReference string,
) (*Checkout, error) {

	amount, err := PlanAmount(planType, billingCycle)
	if err != nil {
		return nil, err
	}

	resp, err := c.prefs.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:       fmt.Sprintf("Assinatura %s (%s) — %s", planType, billingCycle, clinicName),
				Quantity:    1,
				UnitPrice:   amount,
				CurrencyID:  "BRL",
				Description: "Plano de gestão de clínica",
			},
		},
		ExternalReference: externalReference,
	})
	if err != nil {
		return nil, fmt.Errorf("mercadopago preference: %w", err)
	}

	return &Checkout{
		PreferenceID: resp.ID,
		URL:          resp.InitPoint,
	}, nil
}
