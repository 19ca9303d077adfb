package echoapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/pichalabs/picha/core/class"
	"github.com/pichalabs/picha/core/user"
)

func Test_classApi_createAndQuery(t *testing.T) {
	app := setup(t)

	body := []byte(`{"name":"Street Photography 101","instructor":"Teach","instructorEmail":"teach@x.com","seats":12,"price":49.99}`)
	req, rec := newRequest(http.MethodPost, "/class", body)
	app.server.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: code = %v; want %v; body %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	items, err := app.clsRepo.QueryAllClasses(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("stored classes = %d; want 1", len(items))
	}
	if items[0].Status != class.StatusPending {
		t.Errorf("initial status = %q; want %q", items[0].Status, class.StatusPending)
	}

	req, rec = newRequest(http.MethodGet, "/class")
	app.server.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallList(t, items[0])}, rec)

	// name is required
	req, rec = newRequest(http.MethodPost, "/class", []byte(`{"price":10}`))
	app.server.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("nameless create: code = %v; want %v", rec.Code, http.StatusBadRequest)
	}
}

func Test_classApi_moderation(t *testing.T) {
	app := setup(t)

	item := app.createClass(t, "Portrait Lighting", "teach@x.com", 99)

	// approve
	req, rec := newRequest(http.MethodPatch, "/class/"+item.ID.Hex(), []byte(`{"status":"approved"}`))
	app.server.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusOK,
		wantData: marchallObj(t, map[string]int{"matchedCount": 1, "modifiedCount": 1}),
	}, rec)

	// feedback, independent of status
	req, rec = newRequest(http.MethodPost, "/class/"+item.ID.Hex(), []byte(`{"feedback":"great outline"}`))
	app.server.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusOK,
		wantData: marchallObj(t, map[string]int{"matchedCount": 1, "modifiedCount": 1}),
	}, rec)

	items, err := app.clsRepo.QueryAllClasses(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	got := items[0]
	if got.Status != class.StatusApproved {
		t.Errorf("status = %q; want %q", got.Status, class.StatusApproved)
	}
	if got.Feedback != "great outline" {
		t.Errorf("feedback = %q; want %q", got.Feedback, "great outline")
	}
	// all other fields unchanged
	if got.Name != item.Name || got.InstructorEmail != item.InstructorEmail || got.Price != item.Price {
		t.Errorf("unrelated fields changed: %+v", got)
	}

	// absent id is a zero-effect result
	req, rec = newRequest(http.MethodPatch, "/class/ffffffffffffffffffffffff", []byte(`{"status":"denied"}`))
	app.server.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusOK,
		wantData: marchallObj(t, map[string]int{"matchedCount": 0, "modifiedCount": 0}),
	}, rec)
}

func Test_classApi_destroy(t *testing.T) {
	app := setup(t)

	app.createUser(t, "admin@x.com", user.RoleAdmin)
	app.createUser(t, "kid@x.com", user.RoleStudent)
	item := app.createClass(t, "Darkroom Basics", "teach@x.com", 25)

	countClasses := func() int {
		items, err := app.clsRepo.QueryAllClasses(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		return len(items)
	}

	tests := []httpTest{
		{
			name: "Auth required", path: "/class/" + item.ID.Hex(),
			wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken),
		},
		{
			name: "Admin required", path: "/class/" + item.ID.Hex(), token: app.getToken(t, "kid@x.com"),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "Admin deletes", path: "/class/" + item.ID.Hex(), token: app.getToken(t, "admin@x.com"),
			wantCode: http.StatusOK, wantData: marchallObj(t, map[string]int{"deletedCount": 1}),
		},
		{
			name: "Already gone", path: "/class/" + item.ID.Hex(), token: app.getToken(t, "admin@x.com"),
			wantCode: http.StatusOK, wantData: marchallObj(t, map[string]int{"deletedCount": 0}),
		},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := countClasses()
			req, rec := newAuthRequest(http.MethodDelete, tt.path, tt.token)
			app.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)

			after := countClasses()
			wantDelta := 0
			if i == 2 { // only the admin delete removes a record
				wantDelta = 1
			}
			if before-after != wantDelta {
				t.Errorf("catalog count delta = %d; want %d", before-after, wantDelta)
			}
		})
	}
}
