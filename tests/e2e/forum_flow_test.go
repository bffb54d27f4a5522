//go:build e2e

package e2e_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForumFlow_ImagesAndProgress(t *testing.T) {
	ts := setupTestServer(t)

	username := uniqueName("curator")
	accountID := registerUser(t, ts, username)

	const create = `
		mutation Create($username: String!, $id: String!, $title: String!) {
			createForum(username: $username, id: $id, title: $title, category: "tips",
				format: "open", country: "DE", description: "share your lawncare tricks",
				status: "active", region: "North", cords: {lat: 7.0, long: 8.0})
		}`

	title := uniqueName("Lawn Pros")
	_, result := ts.graphqlQuery(t, create, map[string]any{
		"username": username, "id": accountID, "title": title,
	})
	require.Equal(t, "Success", gqlString(t, result, "createForum"))

	const getProfile = `
		mutation Get($id: String!) {
			getProfile(account_id: $id) { account_components { shortid path } }
		}`

	_, result = ts.graphqlQuery(t, getProfile, map[string]any{"id": accountID})
	p := gqlObject(t, result, "getProfile")
	comp := p["account_components"].([]any)[0].(map[string]any)
	require.Equal(t, "forum", comp["path"])
	forumID := comp["shortid"].(string)

	const getForum = `
		mutation Get($shortid: String!) {
			getForum(username: "ignored", shortid: $shortid) {
				title
				progress
				telegram_tag
				images { shortid status }
				sources { shortid likes }
				owner { account_id }
			}
		}`

	_, result = ts.graphqlQuery(t, getForum, map[string]any{"shortid": forumID})
	requireNoErrors(t, result)
	f := gqlObject(t, result, "getForum")
	require.Equal(t, title, f["title"])
	require.Equal(t, 0.0, f["progress"])
	require.Equal(t, accountID, f["owner"].(map[string]any)["account_id"])

	// Image lifecycle: create, then update its status.
	const manageImage = `
		mutation Manage($username: String!, $id: String!, $option: String!, $status: String!, $collID: String!) {
			manageForumImage(username: $username, id: $id, option: $option,
				text: "before and after", level: "expert", format: "photo",
				status: $status, photo_url: "img.jpg", coll_id: $collID)
		}`

	_, result = ts.graphqlQuery(t, manageImage, map[string]any{
		"username": username, "id": forumID, "option": "create", "status": "new", "collID": "",
	})
	require.Equal(t, "Success", gqlString(t, result, "manageForumImage"))

	_, result = ts.graphqlQuery(t, getForum, map[string]any{"shortid": forumID})
	f = gqlObject(t, result, "getForum")
	images := f["images"].([]any)
	require.Len(t, images, 1)
	imageID := images[0].(map[string]any)["shortid"].(string)

	_, result = ts.graphqlQuery(t, manageImage, map[string]any{
		"username": username, "id": forumID, "option": "update", "status": "approved", "collID": imageID,
	})
	require.Equal(t, "Success", gqlString(t, result, "manageForumImage"))

	_, result = ts.graphqlQuery(t, getForum, map[string]any{"shortid": forumID})
	f = gqlObject(t, result, "getForum")
	require.Equal(t, "approved", f["images"].([]any)[0].(map[string]any)["status"])

	// Progress overwrite.
	const progress = `
		mutation Progress($username: String!, $id: String!) {
			updateForumProgress(username: $username, id: $id, progress: 42.0)
		}`

	_, result = ts.graphqlQuery(t, progress, map[string]any{"username": username, "id": forumID})
	require.Equal(t, "Success", gqlString(t, result, "updateForumProgress"))

	_, result = ts.graphqlQuery(t, getForum, map[string]any{"shortid": forumID})
	f = gqlObject(t, result, "getForum")
	require.Equal(t, 42.0, f["progress"])

	// Source named after the caller, then liked.
	const manageSource = `
		mutation Manage($username: String!, $id: String!, $option: String!, $collID: String!) {
			manageForumSource(username: $username, id: $id, option: $option,
				title: "Mowing 101", category: "guide", url: "https://example.com/mowing",
				coll_id: $collID)
		}`

	_, result = ts.graphqlQuery(t, manageSource, map[string]any{
		"username": username, "id": forumID, "option": "create", "collID": "",
	})
	require.Equal(t, "Success", gqlString(t, result, "manageForumSource"))

	_, result = ts.graphqlQuery(t, getForum, map[string]any{"shortid": forumID})
	f = gqlObject(t, result, "getForum")
	sources := f["sources"].([]any)
	require.Len(t, sources, 1)
	sourceID := sources[0].(map[string]any)["shortid"].(string)

	_, result = ts.graphqlQuery(t, manageSource, map[string]any{
		"username": username, "id": forumID, "option": "like", "collID": sourceID,
	})
	require.Equal(t, "Success", gqlString(t, result, "manageForumSource"))

	_, result = ts.graphqlQuery(t, getForum, map[string]any{"shortid": forumID})
	f = gqlObject(t, result, "getForum")
	require.Equal(t, 1.0, f["sources"].([]any)[0].(map[string]any)["likes"])
}

func TestRESTEndpoints(t *testing.T) {
	ts := setupTestServer(t)

	resp, err := ts.Client.Get(ts.URL + "/health/ready")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp2, err := ts.Client.Get(ts.URL + "/questions")
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	var qs []map[string]any
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&qs))
	require.NotEmpty(t, qs)
	require.Contains(t, qs[0], "title")
	require.Contains(t, qs[0], "answer")
}
