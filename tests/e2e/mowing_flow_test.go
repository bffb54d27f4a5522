//go:build e2e

package e2e_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMowingFlow_JoinAndLeave(t *testing.T) {
	ts := setupTestServer(t)

	owner := uniqueName("organizer")
	ownerID := registerUser(t, ts, owner)
	guest := uniqueName("guest")
	guestID := registerUser(t, ts, guest)

	const create = `
		mutation Create($username: String!, $id: String!, $title: String!) {
			createMowing(username: $username, id: $id, title: $title, category: "community",
				level: "easy", square: 400.0, date: "2026-06-01", time: "morning",
				region: "North", cords: {lat: 1.5, long: 1.5},
				borders: [{lat: 1.0, long: 1.0}, {lat: 2.0, long: 2.0}], activity: "ready")
		}`

	title := uniqueName("Park Cleanup")
	_, result := ts.graphqlQuery(t, create, map[string]any{
		"username": owner, "id": ownerID, "title": title,
	})
	require.Equal(t, "Success", gqlString(t, result, "createMowing"))

	const getProfile = `
		mutation Get($id: String!) {
			getProfile(account_id: $id) { account_components { shortid path } }
		}`

	_, result = ts.graphqlQuery(t, getProfile, map[string]any{"id": ownerID})
	p := gqlObject(t, result, "getProfile")
	comp := p["account_components"].([]any)[0].(map[string]any)
	require.Equal(t, "mowing", comp["path"])
	mowingID := comp["shortid"].(string)

	const getMowing = `
		mutation Get($shortid: String!) {
			getMowing(username: "ignored", shortid: $shortid) {
				title
				borders { lat long }
				members { account_id username activity }
				owner { username }
			}
		}`

	_, result = ts.graphqlQuery(t, getMowing, map[string]any{"shortid": mowingID})
	requireNoErrors(t, result)
	m := gqlObject(t, result, "getMowing")
	require.Len(t, m["borders"].([]any), 2)
	members := m["members"].([]any)
	require.Len(t, members, 1)
	require.Equal(t, owner, members[0].(map[string]any)["username"])
	require.Equal(t, owner, m["owner"].(map[string]any)["username"])

	// The guest joins: a member is added and the event is linked into the
	// guest's profile.
	const manage = `
		mutation Manage($username: String!, $id: String!, $option: String!, $activity: String!) {
			manageMowingStatus(username: $username, id: $id, option: $option, activity: $activity)
		}`

	_, result = ts.graphqlQuery(t, manage, map[string]any{
		"username": guest, "id": mowingID, "option": "join", "activity": "ready",
	})
	require.Equal(t, "Success", gqlString(t, result, "manageMowingStatus"))

	_, result = ts.graphqlQuery(t, getMowing, map[string]any{"shortid": mowingID})
	m = gqlObject(t, result, "getMowing")
	require.Len(t, m["members"].([]any), 2)

	_, result = ts.graphqlQuery(t, getProfile, map[string]any{"id": guestID})
	p = gqlObject(t, result, "getProfile")
	require.Len(t, p["account_components"].([]any), 1)

	// Update the guest's activity state.
	_, result = ts.graphqlQuery(t, manage, map[string]any{
		"username": guest, "id": mowingID, "option": "update", "activity": "busy",
	})
	require.Equal(t, "Success", gqlString(t, result, "manageMowingStatus"))

	_, result = ts.graphqlQuery(t, getMowing, map[string]any{"shortid": mowingID})
	m = gqlObject(t, result, "getMowing")
	for _, raw := range m["members"].([]any) {
		member := raw.(map[string]any)
		if member["account_id"] == guestID {
			require.Equal(t, "busy", member["activity"])
		}
	}

	// Leave removes both the member and the profile linkage.
	_, result = ts.graphqlQuery(t, manage, map[string]any{
		"username": guest, "id": mowingID, "option": "leave", "activity": "",
	})
	require.Equal(t, "Success", gqlString(t, result, "manageMowingStatus"))

	_, result = ts.graphqlQuery(t, getMowing, map[string]any{"shortid": mowingID})
	m = gqlObject(t, result, "getMowing")
	require.Len(t, m["members"].([]any), 1)

	_, result = ts.graphqlQuery(t, getProfile, map[string]any{"id": guestID})
	p = gqlObject(t, result, "getProfile")
	require.Empty(t, p["account_components"])
}

func TestMowingFlow_Topics(t *testing.T) {
	ts := setupTestServer(t)

	username := uniqueName("talker")
	accountID := registerUser(t, ts, username)

	const create = `
		mutation Create($username: String!, $id: String!, $title: String!) {
			createMowing(username: $username, id: $id, title: $title, category: "community",
				level: "easy", square: 100.0, date: "2026-06-02", time: "evening",
				region: "South", cords: {lat: 0.0, long: 0.0}, borders: [], activity: "ready")
		}`

	_, result := ts.graphqlQuery(t, create, map[string]any{
		"username": username, "id": accountID, "title": uniqueName("Strip Mow"),
	})
	require.Equal(t, "Success", gqlString(t, result, "createMowing"))

	const getProfile = `
		mutation Get($id: String!) {
			getProfile(account_id: $id) { account_components { shortid } }
		}`

	_, result = ts.graphqlQuery(t, getProfile, map[string]any{"id": accountID})
	p := gqlObject(t, result, "getProfile")
	mowingID := p["account_components"].([]any)[0].(map[string]any)["shortid"].(string)

	const manage = `
		mutation Manage($username: String!, $id: String!, $option: String!, $collID: String!) {
			manageMowingTopic(username: $username, id: $id, option: $option,
				text: "bring rakes", category: "logistics", coll_id: $collID)
		}`

	_, result = ts.graphqlQuery(t, manage, map[string]any{
		"username": username, "id": mowingID, "option": "create", "collID": "",
	})
	require.Equal(t, "Success", gqlString(t, result, "manageMowingTopic"))

	const getTopics = `
		mutation Get($shortid: String!) {
			getMowing(username: "ignored", shortid: $shortid) {
				topics { shortid name supports }
			}
		}`

	_, result = ts.graphqlQuery(t, getTopics, map[string]any{"shortid": mowingID})
	m := gqlObject(t, result, "getMowing")
	topics := m["topics"].([]any)
	require.Len(t, topics, 1)
	topic := topics[0].(map[string]any)
	require.Equal(t, username, topic["name"])
	topicID := topic["shortid"].(string)

	_, result = ts.graphqlQuery(t, manage, map[string]any{
		"username": username, "id": mowingID, "option": "support", "collID": topicID,
	})
	require.Equal(t, "Success", gqlString(t, result, "manageMowingTopic"))

	_, result = ts.graphqlQuery(t, getTopics, map[string]any{"shortid": mowingID})
	m = gqlObject(t, result, "getMowing")
	require.Equal(t, 1.0, m["topics"].([]any)[0].(map[string]any)["supports"])
}
