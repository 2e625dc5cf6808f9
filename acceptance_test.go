package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rtu-kota/canteen-api/models"
	"github.com/rtu-kota/canteen-api/store"
	"github.com/stretchr/testify/suite"
)

// CanteenAcceptanceTestSuite drives the API over a real HTTP server
type CanteenAcceptanceTestSuite struct {
	suite.Suite
	server *httptest.Server
	store  *store.MemoryStore
}

func (suite *CanteenAcceptanceTestSuite) SetupTest() {
	app, s := testApplication(suite.T())
	suite.store = s
	suite.server = httptest.NewServer(setupRouter(app))
}

func (suite *CanteenAcceptanceTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *CanteenAcceptanceTestSuite) postJSON(path string, body interface{}) (*http.Response, map[string]interface{}) {
	encoded, err := json.Marshal(body)
	suite.Require().NoError(err)

	resp, err := http.Post(suite.server.URL+path, "application/json", bytes.NewReader(encoded))
	suite.Require().NoError(err)
	defer resp.Body.Close()

	var response map[string]interface{}
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	return resp, response
}

func (suite *CanteenAcceptanceTestSuite) getList(path string) []map[string]interface{} {
	resp, err := http.Get(suite.server.URL + path)
	suite.Require().NoError(err)
	defer resp.Body.Close()
	suite.Require().Equal(http.StatusOK, resp.StatusCode)

	var response []map[string]interface{}
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	return response
}

func (suite *CanteenAcceptanceTestSuite) order(phone string, qty int) map[string]interface{} {
	return map[string]interface{}{
		"customer_name":         "Ravi",
		"phone":                 phone,
		"hostel":                "Boys Hostel 1",
		"room":                  "B-12",
		"delivery_instructions": "Call on arrival",
		"items": []map[string]interface{}{
			{"item_id": "65f1c0ffee0000000000abcd", "name": "Tea", "qty": qty, "price": 10},
		},
		"total_amount": 10 * qty,
	}
}

func (suite *CanteenAcceptanceTestSuite) TestStudentOrdersTea() {
	resp, created := suite.postJSON("/api/menu", map[string]interface{}{
		"name": "Tea", "category": "Beverages", "price": 10,
	})
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Len(created["id"], 24)

	menu := suite.getList("/api/menu?category=Beverages")
	suite.Require().Len(menu, 1)
	suite.Equal(created["id"], menu[0]["id"])
	suite.Equal(true, menu[0]["is_available"])

	resp, placed := suite.postJSON("/api/orders", suite.order("9876543210", 2))
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Equal("Order placed", placed["message"])

	orders := suite.getList("/api/orders?phone=" + url.QueryEscape("9876543210"))
	suite.Require().Len(orders, 1)
	suite.Equal(placed["id"], orders[0]["id"])
	suite.Equal(models.StatusPending, orders[0]["status"])
	suite.Equal(20.0, orders[0]["total_amount"])

	suite.Empty(suite.getList("/api/orders?phone=0000000000"))
}

func (suite *CanteenAcceptanceTestSuite) TestValidationErrorsDescribeFields() {
	resp, response := suite.postJSON("/api/menu", map[string]interface{}{
		"category": "Beverages", "price": -3,
	})
	suite.Equal(http.StatusUnprocessableEntity, resp.StatusCode)

	detail, ok := response["detail"].([]interface{})
	suite.Require().True(ok, "detail should be a list of field errors")
	fields := map[string]bool{}
	for _, d := range detail {
		fields[d.(map[string]interface{})["field"].(string)] = true
	}
	suite.True(fields["name"])
	suite.True(fields["price"])
	suite.Equal(0, suite.store.Count(models.MenuItemCollection))
}

func (suite *CanteenAcceptanceTestSuite) TestEmptyOrderIsAccepted() {
	body := suite.order("1234567890", 1)
	body["items"] = []interface{}{}
	body["total_amount"] = 0

	resp, _ := suite.postJSON("/api/orders", body)
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Equal(1, suite.store.Count(models.OrderCollection))
}

func (suite *CanteenAcceptanceTestSuite) TestReadsAreIdempotent() {
	for i := 0; i < 3; i++ {
		resp, _ := suite.postJSON("/api/menu", map[string]interface{}{
			"name": fmt.Sprintf("Item %d", i), "category": "Snacks", "price": i,
		})
		suite.Require().Equal(http.StatusOK, resp.StatusCode)
	}

	suite.Equal(suite.getList("/api/menu"), suite.getList("/api/menu"))
	suite.Equal(3, suite.store.Count(models.MenuItemCollection))
}

func (suite *CanteenAcceptanceTestSuite) TestUploadMenuImageThenFetch() {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", "paneer roll.png")
	suite.Require().NoError(err)
	_, err = part.Write([]byte("png bytes"))
	suite.Require().NoError(err)
	suite.Require().NoError(writer.Close())

	resp, err := http.Post(suite.server.URL+"/api/menu/images", writer.FormDataContentType(), body)
	suite.Require().NoError(err)
	defer resp.Body.Close()
	suite.Require().Equal(http.StatusCreated, resp.StatusCode)

	var uploaded map[string]interface{}
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&uploaded))
	imageURL := uploaded["image_url"].(string)
	suite.Contains(imageURL, "_paneer_roll.png")

	image, err := http.Get(suite.server.URL + imageURL)
	suite.Require().NoError(err)
	defer image.Body.Close()
	suite.Equal(http.StatusOK, image.StatusCode)

	content, err := io.ReadAll(image.Body)
	suite.Require().NoError(err)
	suite.Equal([]byte("png bytes"), content)
}

func TestCanteenAcceptanceTestSuite(t *testing.T) {
	suite.Run(t, new(CanteenAcceptanceTestSuite))
}
