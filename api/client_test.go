package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gplay-cli/gplay/constant"
	"github.com/gplay-cli/gplay/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func newTestClient(handler http.HandlerFunc) (*Client, func()) {
	server := httptest.NewServer(handler)
	client := New(server.Client())
	client.PlaybackBase = server.URL
	client.GraphQLBase = server.URL + "/graphql"
	return client, server.Close
}

func TestFetchVideoSession(t *testing.T) {
	Convey("Given a playback server", t, func() {
		var (
			method string
			path   string
			body   map[string]any
		)

		client, stop := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			method, path = r.Method, r.URL.Path
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, &body)
			_, _ = w.Write([]byte(sessionBody))
		})
		defer stop()

		session, err := client.FetchVideoSession(context.Background(), "12345", "max")

		So(err, ShouldBeNil)
		So(session.Sources, ShouldHaveLength, 3)

		Convey("The request should follow the session contract", func() {
			So(method, ShouldEqual, http.MethodPost)
			So(path, ShouldEqual, constant.VideoSessionPath)
			So(body["video_id"], ShouldEqual, "12345")
			So(body["quality"], ShouldEqual, "max")
			So(body["player_type"], ShouldEqual, "desktop")
			So(body["content_protection"], ShouldEqual, "widevine")
			So(body["tz"], ShouldEqual, "-03:00")
			So(body["version"], ShouldEqual, float64(1))

			_, err := uuid.Parse(body["vsid"].(string))
			So(err, ShouldBeNil)
		})
	})

	Convey("Given a server reporting an API error", t, func() {
		client, stop := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message": "geo blocked"}`))
		})
		defer stop()

		_, err := client.FetchVideoSession(context.Background(), "1", "max")
		So(errors.Is(err, ErrAPI), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, "geo blocked")
	})

	Convey("Given a server failing without explanation", t, func() {
		client, stop := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`upstream down`))
		})
		defer stop()

		_, err := client.FetchVideoSession(context.Background(), "1", "max")
		So(errors.Is(err, ErrHTTP), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, "502")
		So(err.Error(), ShouldContainSubstring, "upstream down")
	})
}

func TestFetchVideosByDate(t *testing.T) {
	day := time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC)
	q := DateQuery{TitleID: "12082", From: day, To: day}

	Convey("Given a GraphQL server", t, func() {
		filesystem.SetMemMapFs()

		var (
			hits     int
			request  *http.Request
			response = `{"data": {"title": {"structure": {"excerpts": {"resources": [{"id": 1, "headline": "One"}]}}}}}`
		)

		client, stop := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			hits++
			request = r
			_, _ = w.Write([]byte(response))
		})
		defer stop()

		listing, err := client.FetchVideosByDate(context.Background(), q)
		So(err, ShouldBeNil)
		So(listing.Items, ShouldHaveLength, 1)
		So(listing.Items[0].ID, ShouldEqual, "1")

		Convey("The request should carry the persisted query", func() {
			So(request.Method, ShouldEqual, http.MethodGet)
			So(request.URL.Path, ShouldEqual, "/graphql")
			So(request.URL.Query().Get("operationName"), ShouldEqual, constant.VideosByDateOperation)
			So(request.Header.Get("x-tenant-id"), ShouldEqual, constant.TenantID)

			var variables map[string]any
			So(json.Unmarshal([]byte(request.URL.Query().Get("variables")), &variables), ShouldBeNil)
			So(variables["titleId"], ShouldEqual, "12082")
			So(variables["gte"], ShouldEqual, "2024-05-03")
			So(variables["lte"], ShouldEqual, "2024-05-03")
			So(variables["page"], ShouldEqual, float64(1))
			So(variables["perPage"], ShouldEqual, float64(20))

			So(request.URL.Query().Get("extensions"), ShouldContainSubstring, constant.VideosByDateHash)
		})

		Convey("With a listing cache the second call is served locally", func() {
			client.Listings = NewListingCache("/cache/listings.json", time.Minute)

			_, err := client.FetchVideosByDate(context.Background(), q)
			So(err, ShouldBeNil)
			_, err = client.FetchVideosByDate(context.Background(), q)
			So(err, ShouldBeNil)
			So(hits, ShouldEqual, 2)
		})
	})
}
