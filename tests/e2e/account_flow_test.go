//go:build e2e

package e2e_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccountFlow_RegisterLoginFetch(t *testing.T) {
	ts := setupTestServer(t)

	username := uniqueName("alice")
	accountID := registerUser(t, ts, username)

	// Login with the security code used at registration.
	const login = `
		mutation Login($code: String!) {
			login(security_code: $code) {
				account_id
				username
			}
		}`

	status, result := ts.graphqlQuery(t, login, map[string]any{"code": "code-" + username})
	require.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	cookie := gqlObject(t, result, "login")
	require.Equal(t, accountID, cookie["account_id"])
	require.Equal(t, username, cookie["username"])

	// Fetch the full profile.
	const getProfile = `
		mutation Get($id: String!) {
			getProfile(account_id: $id) {
				account_id
				username
				region
				rate
				budget
				area_size
				orders { shortid }
				zones { shortid }
				account_components { shortid }
			}
		}`

	status, result = ts.graphqlQuery(t, getProfile, map[string]any{"id": accountID})
	require.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	p := gqlObject(t, result, "getProfile")
	require.Equal(t, username, p["username"])
	require.Equal(t, "North", p["region"])
	require.Equal(t, 1.0, p["rate"])
	require.Equal(t, 0.0, p["budget"])
	require.Empty(t, p["orders"])
	require.Empty(t, p["account_components"])
}

func TestAccountFlow_DuplicateUsername(t *testing.T) {
	ts := setupTestServer(t)

	username := uniqueName("taken")
	registerUser(t, ts, username)

	const mutation = `
		mutation Register($username: String!) {
			register(username: $username, security_code: "other-code", telegram_tag: "",
				region: "", cords: {lat: 0.0, long: 0.0}, activity_day: "", main_photo: "") {
				account_id
				username
			}
		}`

	status, result := ts.graphqlQuery(t, mutation, map[string]any{"username": username})
	require.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	cookie := gqlObject(t, result, "register")
	require.Equal(t, "", cookie["account_id"])
	require.Equal(t, username, cookie["username"])
}

func TestAccountFlow_LoginUnknownCode(t *testing.T) {
	ts := setupTestServer(t)

	const login = `
		mutation {
			login(security_code: "no-such-code") {
				account_id
				username
			}
		}`

	status, result := ts.graphqlQuery(t, login, nil)
	require.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	cookie := gqlObject(t, result, "login")
	require.Equal(t, "", cookie["account_id"])
	require.Equal(t, "", cookie["username"])
}

func TestAccountFlow_OrderAcceptAddsBudget(t *testing.T) {
	ts := setupTestServer(t)

	accountID := registerUser(t, ts, uniqueName("earner"))

	const manage = `
		mutation Manage($id: String!, $option: String!, $cost: Float!, $collID: String!) {
			manageProfileOrder(account_id: $id, option: $option, msg: "mow the yard",
				square: 40.0, cost: $cost, date: "2026-05-01", coll_id: $collID)
		}`

	status, result := ts.graphqlQuery(t, manage, map[string]any{
		"id": accountID, "option": "create", "cost": 30.0, "collID": "",
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Success", gqlString(t, result, "manageProfileOrder"))

	// Read back the order to get its generated shortid.
	const getOrders = `
		mutation Get($id: String!) {
			getProfile(account_id: $id) {
				budget
				orders { shortid isAccepted }
			}
		}`

	_, result = ts.graphqlQuery(t, getOrders, map[string]any{"id": accountID})
	p := gqlObject(t, result, "getProfile")
	orders := p["orders"].([]any)
	require.Len(t, orders, 1)
	orderID := orders[0].(map[string]any)["shortid"].(string)

	// Accept it twice: the budget grows on every accept.
	for range 2 {
		_, result = ts.graphqlQuery(t, manage, map[string]any{
			"id": accountID, "option": "accept", "cost": 30.0, "collID": orderID,
		})
		require.Equal(t, "Success", gqlString(t, result, "manageProfileOrder"))
	}

	_, result = ts.graphqlQuery(t, getOrders, map[string]any{"id": accountID})
	p = gqlObject(t, result, "getProfile")
	require.Equal(t, 60.0, p["budget"])
	orders = p["orders"].([]any)
	require.Equal(t, true, orders[0].(map[string]any)["isAccepted"])
}

func TestAccountFlow_ZonesAdjustAreaSize(t *testing.T) {
	ts := setupTestServer(t)

	accountID := registerUser(t, ts, uniqueName("zoner"))

	const manage = `
		mutation Manage($id: String!, $option: String!, $square: Float!, $collID: String!) {
			manageProfileZone(account_id: $id, option: $option, title: "Back Yard",
				category: "garden", cords: {lat: 3.0, long: 4.0}, square: $square,
				status: "planned", photo_url: "", coll_id: $collID)
		}`

	_, result := ts.graphqlQuery(t, manage, map[string]any{
		"id": accountID, "option": "create", "square": 55.0, "collID": "",
	})
	require.Equal(t, "Success", gqlString(t, result, "manageProfileZone"))

	const getZones = `
		mutation Get($id: String!) {
			getProfile(account_id: $id) {
				area_size
				zones { shortid likes }
			}
		}`

	_, result = ts.graphqlQuery(t, getZones, map[string]any{"id": accountID})
	p := gqlObject(t, result, "getProfile")
	require.Equal(t, 55.0, p["area_size"])
	zones := p["zones"].([]any)
	require.Len(t, zones, 1)
	zoneID := zones[0].(map[string]any)["shortid"].(string)

	// Like, then delete. Deleting subtracts the caller-supplied square.
	_, result = ts.graphqlQuery(t, manage, map[string]any{
		"id": accountID, "option": "like", "square": 0.0, "collID": zoneID,
	})
	require.Equal(t, "Success", gqlString(t, result, "manageProfileZone"))

	_, result = ts.graphqlQuery(t, manage, map[string]any{
		"id": accountID, "option": "delete", "square": 55.0, "collID": zoneID,
	})
	require.Equal(t, "Success", gqlString(t, result, "manageProfileZone"))

	_, result = ts.graphqlQuery(t, getZones, map[string]any{"id": accountID})
	p = gqlObject(t, result, "getProfile")
	require.Equal(t, 0.0, p["area_size"])
	require.Empty(t, p["zones"])
}
