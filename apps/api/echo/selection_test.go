package echoapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/pichalabs/picha/core/selection"
	"github.com/pichalabs/picha/core/user"
)

func Test_selectionApi_query(t *testing.T) {
	app := setup(t)

	app.createUser(t, "kid@x.com", user.RoleStudent)
	app.createUser(t, "other@x.com", user.RoleStudent)
	entry := app.createSelection(t, "61a000000000000000000001", "kid@x.com", "Street Photography 101", 49.99)
	app.createSelection(t, "61a000000000000000000002", "other@x.com", "Portrait Lighting", 99)

	kidToken := app.getToken(t, "kid@x.com")

	tests := []httpTest{
		{
			name: "Auth required", path: "/select?email=kid@x.com",
			wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken),
		},
		{
			name: "Empty email short-circuits", path: "/select", token: kidToken,
			wantCode: http.StatusOK, wantData: marchallList(t),
		},
		{
			name: "Identity mismatch", path: "/select?email=other@x.com", token: kidToken,
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "Owner sees only own entries", path: "/select?email=kid@x.com", token: kidToken,
			wantCode: http.StatusOK, wantData: marchallList(t, entry),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, tt.path, tt.token)
			app.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_selectionApi_addIdempotent(t *testing.T) {
	app := setup(t)

	body := []byte(`{"_id":"61a000000000000000000001","email":"kid@x.com","name":"Street Photography 101","price":49.99}`)

	countEntries := func() int {
		entries, err := app.selRepo.QueryEntriesByOwner(context.Background(), "kid@x.com")
		if err != nil {
			t.Fatal(err)
		}
		return len(entries)
	}

	req, rec := newRequest(http.MethodPatch, "/select", body)
	app.server.ServeHTTP(rec, req)
	wantEntry := selection.Entry{ID: "61a000000000000000000001", Email: "kid@x.com", Name: "Street Photography 101", Price: 49.99}
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusOK,
		wantData: marchallObj(t, map[string]interface{}{"alreadyExists": false, "result": wantEntry}),
	}, rec)
	if n := countEntries(); n != 1 {
		t.Fatalf("entries after first add = %d; want 1", n)
	}

	// same class again: no new record
	req, rec = newRequest(http.MethodPatch, "/select", body)
	app.server.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusOK,
		wantData: marchallObj(t, map[string]interface{}{"alreadyExists": true, "result": wantEntry}),
	}, rec)
	if n := countEntries(); n != 1 {
		t.Fatalf("entries after repeat add = %d; want 1", n)
	}

	// id is required
	req, rec = newRequest(http.MethodPatch, "/select", []byte(`{"email":"kid@x.com"}`))
	app.server.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("idless add: code = %v; want %v", rec.Code, http.StatusBadRequest)
	}

	// a malformed class id never reaches the store
	req, rec = newRequest(http.MethodPatch, "/select", []byte(`{"_id":"not-a-class-id","email":"kid@x.com"}`))
	app.server.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusBadRequest,
		wantData: marchallObj(t, map[string]string{"_id": "must be a valid class id"}),
	}, rec)
	if n := countEntries(); n != 1 {
		t.Fatalf("entries after malformed add = %d; want 1", n)
	}
}

func Test_selectionApi_destroy(t *testing.T) {
	app := setup(t)

	entry := app.createSelection(t, "61a000000000000000000001", "kid@x.com", "Darkroom Basics", 25)

	req, rec := newRequest(http.MethodDelete, "/select/"+entry.ID)
	app.server.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusOK,
		wantData: marchallObj(t, map[string]int{"deletedCount": 1}),
	}, rec)

	entries, err := app.selRepo.QueryEntriesByOwner(context.Background(), "kid@x.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("entries after delete = %d; want 0", len(entries))
	}

	// repeat delete is a zero-effect result
	req, rec = newRequest(http.MethodDelete, "/select/"+entry.ID)
	app.server.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusOK,
		wantData: marchallObj(t, map[string]int{"deletedCount": 0}),
	}, rec)
}
