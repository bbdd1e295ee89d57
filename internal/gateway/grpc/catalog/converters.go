package catalog

import (
	"errors"
	"fmt"

	"fulfillment/internal/entities"

	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/structpb"
)

var errMalformedResponse = errors.New("malformed catalog response")

func sellerRequest(sellerID string) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"seller_id": sellerID,
	})
}

func productsRequest(productIDs []string) (*structpb.Struct, error) {
	ids := make([]any, 0, len(productIDs))
	for _, id := range productIDs {
		ids = append(ids, id)
	}
	return structpb.NewStruct(map[string]any{
		"product_ids": ids,
	})
}

func toSeller(resp *structpb.Struct) (*entities.Seller, error) {
	raw := resp.GetFields()["seller"].GetStructValue()
	if raw == nil {
		return nil, entities.ErrSellerNotFound
	}

	fields := raw.GetFields()
	seller := &entities.Seller{
		ID:   fields["id"].GetStringValue(),
		Name: fields["name"].GetStringValue(),
	}
	if seller.ID == "" {
		return nil, fmt.Errorf("%w: seller without id", errMalformedResponse)
	}

	lat, hasLat := fields["lat"]
	lon, hasLon := fields["lon"]
	if hasLat && hasLon {
		seller.Location = &entities.Location{
			Lat: lat.GetNumberValue(),
			Lon: lon.GetNumberValue(),
		}
	}

	return seller, nil
}

// toProducts цена приходит строкой, чтобы не терять копейки на double.
// Доли копеек округляются до двух знаков, отрицательная цена считается битым ответом.
func toProducts(resp *structpb.Struct) ([]entities.Product, error) {
	values := resp.GetFields()["products"].GetListValue().GetValues()

	products := make([]entities.Product, 0, len(values))
	for _, v := range values {
		fields := v.GetStructValue().GetFields()
		if fields == nil {
			return nil, fmt.Errorf("%w: product is not an object", errMalformedResponse)
		}

		price, err := decimal.NewFromString(fields["price"].GetStringValue())
		if err != nil {
			return nil, fmt.Errorf("%w: product %s price: %w", errMalformedResponse, fields["id"].GetStringValue(), err)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("%w: product %s price is negative", errMalformedResponse, fields["id"].GetStringValue())
		}

		products = append(products, entities.Product{
			ID:       fields["id"].GetStringValue(),
			SellerID: fields["seller_id"].GetStringValue(),
			Name:     fields["name"].GetStringValue(),
			Price:    price.Round(2),
		})
	}

	return products, nil
}
