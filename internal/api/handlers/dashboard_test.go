package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/mthompson/stickit/internal/domain"
	"github.com/mthompson/stickit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardResponse struct {
	Day      string `json:"day"`
	IsToday  bool   `json:"isToday"`
	Pinned   []struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		ColorCode string `json:"colorCode"`
	} `json:"pinned"`
	Unpinned []struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		ColorCode string `json:"colorCode"`
	} `json:"unpinned"`
}

func TestDashboard_Get(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().BuildAndLogin(t, ts)
	red := testutil.NewCategoryBuilder(user.ID).WithColor("FF0000").Build(t, ts.DB.DB)
	green := testutil.NewCategoryBuilder(user.ID).WithColor("00FF00").Build(t, ts.DB.DB)

	noteA := testutil.NewPostItBuilder(user.ID, red.ID).
		WithTitle("note A").WithWeekday(domain.Monday).Pinned().Build(t, ts.DB.DB)
	noteB := testutil.NewPostItBuilder(user.ID, green.ID).
		WithTitle("note B").WithWeekday(domain.Monday).Build(t, ts.DB.DB)

	resp := testutil.DoJSON(t, http.MethodGet, ts.APIURL("/dashboard?day=Monday"), token, nil)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var dashboard dashboardResponse
	testutil.AssertJSONResponse(t, resp, &dashboard)

	assert.Equal(t, "monday", dashboard.Day)

	require.Len(t, dashboard.Pinned, 1)
	assert.Equal(t, noteA.ID.String(), dashboard.Pinned[0].ID)
	assert.Equal(t, "FF0000", dashboard.Pinned[0].ColorCode)

	require.Len(t, dashboard.Unpinned, 1)
	assert.Equal(t, noteB.ID.String(), dashboard.Unpinned[0].ID)
	assert.Equal(t, "00FF00", dashboard.Unpinned[0].ColorCode)
}

func TestDashboard_DayDefaultsToToday(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().BuildAndLogin(t, ts)
	category := testutil.NewCategoryBuilder(user.ID).Build(t, ts.DB.DB)
	testutil.NewPostItBuilder(user.ID, category.ID).
		WithWeekday(domain.CurrentWeekday()).Pinned().Build(t, ts.DB.DB)

	resp := testutil.DoJSON(t, http.MethodGet, ts.APIURL("/dashboard"), token, nil)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var dashboard dashboardResponse
	testutil.AssertJSONResponse(t, resp, &dashboard)

	assert.Equal(t, string(domain.CurrentWeekday()), dashboard.Day)
	assert.True(t, dashboard.IsToday)
	assert.Len(t, dashboard.Pinned, 1)
}

func TestDashboard_EmptyDayIsNotAnError(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token := testutil.NewUserBuilder().BuildAndLogin(t, ts)

	resp := testutil.DoJSON(t, http.MethodGet, ts.APIURL("/dashboard?day=sunday"), token, nil)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var dashboard dashboardResponse
	testutil.AssertJSONResponse(t, resp, &dashboard)

	assert.Empty(t, dashboard.Pinned)
	assert.Empty(t, dashboard.Unpinned)
}

func TestDashboard_WeekdayCaseInsensitive(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().BuildAndLogin(t, ts)
	category := testutil.NewCategoryBuilder(user.ID).Build(t, ts.DB.DB)
	testutil.NewPostItBuilder(user.ID, category.ID).
		WithWeekday(domain.Friday).Pinned().Build(t, ts.DB.DB)

	for _, day := range []string{"friday", "Friday", "FRIDAY"} {
		resp := testutil.DoJSON(t, http.MethodGet, ts.APIURL(fmt.Sprintf("/dashboard?day=%s", day)), token, nil)
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var dashboard dashboardResponse
		testutil.AssertJSONResponse(t, resp, &dashboard)

		assert.Equal(t, "friday", dashboard.Day)
		assert.Len(t, dashboard.Pinned, 1)
	}
}

func TestDashboard_InvalidWeekday(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token := testutil.NewUserBuilder().BuildAndLogin(t, ts)

	resp := testutil.DoJSON(t, http.MethodGet, ts.APIURL("/dashboard?day=someday"), token, nil)
	testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "weekday")
}

func TestDashboard_RequiresSession(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := testutil.DoJSON(t, http.MethodGet, ts.APIURL("/dashboard"), "", nil)
	testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	resp.Body.Close()
}
