package integration_test

// End-to-end tests against a running server with a clean database.
// They register their own users and groups with a per-run suffix, so
// repeated runs do not collide. Set TEST_BASE_URL to enable, e.g.
//
//	TEST_BASE_URL=http://localhost:8080 go test ./tests/...

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"
)

var (
	baseURL = os.Getenv("TEST_BASE_URL")
	runID   = fmt.Sprintf("%d", time.Now().UnixNano()%1_000_000_000)
)

func requireServer(t *testing.T) {
	t.Helper()
	if baseURL == "" {
		t.Skip("TEST_BASE_URL not set; skipping integration tests")
	}
}

// ============================================================================
// HTTP Client Helpers
// ============================================================================

type apiClient struct {
	client  *http.Client
	baseURL string
	token   string
}

func newClient() *apiClient {
	return &apiClient{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
	}
}

func (c *apiClient) withToken(token string) *apiClient {
	c.token = token
	return c
}

func (c *apiClient) do(method, path string, body interface{}) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return c.client.Do(req)
}

func (c *apiClient) get(path string) (*http.Response, error) {
	return c.do("GET", path, nil)
}

func (c *apiClient) post(path string, body interface{}) (*http.Response, error) {
	return c.do("POST", path, body)
}

func (c *apiClient) put(path string, body interface{}) (*http.Response, error) {
	return c.do("PUT", path, body)
}

func (c *apiClient) delete(path string) (*http.Response, error) {
	return c.do("DELETE", path, nil)
}

func parseJSON(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

// ============================================================================
// Setup Helpers
// ============================================================================

// registerAndLogin creates a fresh user and returns an authenticated client
// plus the generated username.
func registerAndLogin(t *testing.T, name string) (*apiClient, string) {
	t.Helper()
	username := fmt.Sprintf("%s_%s", name, runID)

	resp, err := newClient().post("/auth/register", map[string]string{
		"username": username,
		"password": "password123",
	})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: status %d", username, resp.StatusCode)
	}

	resp, err = newClient().post("/auth/login", map[string]string{
		"username": username,
		"password": "password123",
	})
	if err != nil {
		t.Fatalf("login %s: %v", username, err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d", username, resp.StatusCode)
	}

	var result struct {
		AccessToken string `json:"access_token"`
	}
	parseJSON(t, resp, &result)
	return newClient().withToken(result.AccessToken), username
}

func createGroup(t *testing.T, client *apiClient, title, slug string) string {
	t.Helper()
	slug = fmt.Sprintf("%s-%s", slug, runID)
	resp, err := client.post("/groups", map[string]string{
		"title": title,
		"slug":  slug,
	})
	if err != nil {
		t.Fatalf("create group %s: %v", slug, err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create group %s: status %d", slug, resp.StatusCode)
	}
	return slug
}

func createPost(t *testing.T, client *apiClient, text string, groupSlug string) int64 {
	t.Helper()
	body := map[string]interface{}{"text": text}
	if groupSlug != "" {
		body["group_slug"] = groupSlug
	}
	resp, err := client.post("/posts", body)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		t.Fatalf("create post: status %d: %s", resp.StatusCode, raw)
	}

	var post struct {
		ID int64 `json:"id"`
	}
	parseJSON(t, resp, &post)
	return post.ID
}

type postPage struct {
	Posts []struct {
		ID     int64  `json:"id"`
		Text   string `json:"text"`
		Author struct {
			Username string `json:"username"`
		} `json:"author"`
	} `json:"posts"`
	PageInfo struct {
		Page       int  `json:"page"`
		TotalPages int  `json:"total_pages"`
		TotalItems int  `json:"total_items"`
		HasNext    bool `json:"has_next"`
		HasPrev    bool `json:"has_prev"`
	} `json:"page_info"`
}

func getPage(t *testing.T, client *apiClient, path string) postPage {
	t.Helper()
	resp, err := client.get(path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		t.Fatalf("GET %s: status %d: %s", path, resp.StatusCode, raw)
	}
	var page postPage
	parseJSON(t, resp, &page)
	return page
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestGroupFeedMembership(t *testing.T) {
	requireServer(t)
	client, _ := registerAndLogin(t, "grouper")
	slug := createGroup(t, client, "Group Feed Test", "feedtest")

	groupedID := createPost(t, client, "a post in the group", slug)
	freeID := createPost(t, client, "a post without a group", "")

	groupFeed := getPage(t, client, "/groups/"+slug+"/posts")
	if !containsPost(groupFeed, groupedID) {
		t.Errorf("group feed is missing post %d", groupedID)
	}
	if containsPost(groupFeed, freeID) {
		t.Errorf("group feed contains group-less post %d", freeID)
	}

	allPosts := getPage(t, client, "/posts")
	if !containsPost(allPosts, freeID) || !containsPost(allPosts, groupedID) {
		t.Error("site-wide feed should contain both posts")
	}
}

func TestGroupFeedUnknownSlug(t *testing.T) {
	requireServer(t)
	resp, err := newClient().get("/groups/no-such-group-" + runID + "/posts")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestFollowFeedLifecycle(t *testing.T) {
	requireServer(t)
	author, authorName := registerAndLogin(t, "author")
	reader, _ := registerAndLogin(t, "reader")

	createPost(t, author, "first from author", "")
	createPost(t, author, "second from author", "")

	// Before following the feed is empty.
	feed := getPage(t, reader, "/feed")
	if len(feed.Posts) != 0 {
		t.Errorf("feed before following has %d posts, want 0", len(feed.Posts))
	}

	// Follow twice; both must succeed.
	for i := 0; i < 2; i++ {
		resp, err := reader.post("/users/"+authorName+"/follow", nil)
		if err != nil {
			t.Fatalf("follow: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("follow attempt %d: status %d, want 200", i+1, resp.StatusCode)
		}
	}

	feed = getPage(t, reader, "/feed")
	if len(feed.Posts) != 2 {
		t.Errorf("feed after following has %d posts, want 2", len(feed.Posts))
	}

	// Unfollow empties the feed again; a second unfollow is still a 200.
	for i := 0; i < 2; i++ {
		resp, err := reader.delete("/users/" + authorName + "/follow")
		if err != nil {
			t.Fatalf("unfollow: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("unfollow attempt %d: status %d, want 200", i+1, resp.StatusCode)
		}
	}

	feed = getPage(t, reader, "/feed")
	if len(feed.Posts) != 0 {
		t.Errorf("feed after unfollowing has %d posts, want 0", len(feed.Posts))
	}
}

func TestAuthorFeedPagination(t *testing.T) {
	requireServer(t)
	client, username := registerAndLogin(t, "prolific")

	for i := 1; i <= 14; i++ {
		createPost(t, client, fmt.Sprintf("post number %d", i), "")
	}

	page1 := getPage(t, client, "/users/"+username+"/posts?page=1")
	if len(page1.Posts) != 10 {
		t.Errorf("page 1 has %d posts, want 10", len(page1.Posts))
	}
	if page1.Posts[0].Text != "post number 14" {
		t.Errorf("first post on page 1 = %q, want the newest", page1.Posts[0].Text)
	}
	if page1.PageInfo.TotalPages != 2 || !page1.PageInfo.HasNext {
		t.Errorf("page 1 info = %+v, want 2 total pages with a next page", page1.PageInfo)
	}

	page2 := getPage(t, client, "/users/"+username+"/posts?page=2")
	if len(page2.Posts) != 4 {
		t.Errorf("page 2 has %d posts, want 4", len(page2.Posts))
	}

	// Past the end clamps to the last page instead of erroring.
	page9 := getPage(t, client, "/users/"+username+"/posts?page=9")
	if page9.PageInfo.Page != 2 || len(page9.Posts) != 4 {
		t.Errorf("page 9 resolved to page %d with %d posts, want page 2 with 4", page9.PageInfo.Page, len(page9.Posts))
	}

	// Garbage page values resolve to page 1.
	pageX := getPage(t, client, "/users/"+username+"/posts?page=banana")
	if pageX.PageInfo.Page != 1 {
		t.Errorf("non-numeric page resolved to %d, want 1", pageX.PageInfo.Page)
	}
}

func TestPostEditOwnership(t *testing.T) {
	requireServer(t)
	owner, _ := registerAndLogin(t, "owner")
	intruder, _ := registerAndLogin(t, "intruder")

	postID := createPost(t, owner, "original text", "")
	path := fmt.Sprintf("/posts/%d", postID)

	resp, err := intruder.put(path, map[string]string{"text": "hijacked"})
	if err != nil {
		t.Fatalf("foreign edit: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("foreign edit status = %d, want 403", resp.StatusCode)
	}

	// The post is unchanged and the owner can still edit it.
	var detail struct {
		Post struct {
			Text string `json:"text"`
		} `json:"post"`
	}
	getResp, err := newClient().get(path)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	parseJSON(t, getResp, &detail)
	if detail.Post.Text != "original text" {
		t.Errorf("post text after rejected edit = %q, want unchanged", detail.Post.Text)
	}

	resp, err = owner.put(path, map[string]string{"text": "revised text"})
	if err != nil {
		t.Fatalf("owner edit: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("owner edit status = %d, want 200", resp.StatusCode)
	}
}

func TestCommentsOnPostDetail(t *testing.T) {
	requireServer(t)
	author, _ := registerAndLogin(t, "poster")
	commenter, commenterName := registerAndLogin(t, "commenter")

	postID := createPost(t, author, "comment on this", "")
	path := fmt.Sprintf("/posts/%d", postID)

	resp, err := commenter.post(path+"/comments", map[string]string{"text": "well said"})
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create comment status = %d, want 201", resp.StatusCode)
	}

	// Empty comment text is rejected.
	resp, err = commenter.post(path+"/comments", map[string]string{"text": "   "})
	if err != nil {
		t.Fatalf("create empty comment: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("empty comment status = %d, want 400", resp.StatusCode)
	}

	var detail struct {
		Comments []struct {
			Text   string `json:"text"`
			Author struct {
				Username string `json:"username"`
			} `json:"author"`
		} `json:"comments"`
	}
	getResp, err := newClient().get(path)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	parseJSON(t, getResp, &detail)

	if len(detail.Comments) != 1 {
		t.Fatalf("post has %d comments, want 1", len(detail.Comments))
	}
	if detail.Comments[0].Author.Username != commenterName {
		t.Errorf("comment author = %q, want %q", detail.Comments[0].Author.Username, commenterName)
	}
}

func TestWritesRequireAuth(t *testing.T) {
	requireServer(t)
	anon := newClient()

	checks := []struct {
		method string
		path   string
		body   interface{}
	}{
		{"POST", "/posts", map[string]string{"text": "nope"}},
		{"POST", "/groups", map[string]string{"title": "x", "slug": "x"}},
		{"GET", "/feed", nil},
		{"POST", "/users/nobody/follow", nil},
	}
	for _, c := range checks {
		resp, err := anon.do(c.method, c.path, c.body)
		if err != nil {
			t.Fatalf("%s %s: %v", c.method, c.path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("%s %s status = %d, want 401", c.method, c.path, resp.StatusCode)
		}
	}
}

func containsPost(page postPage, id int64) bool {
	for _, p := range page.Posts {
		if p.ID == id {
			return true
		}
	}
	return false
}
