package service

import (
	"context"
	"sort"
	"time"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/domain"
)

// In-memory repository fakes. They mirror the live-row filtering and ordering
// the SQL implementations do so service tests exercise real query semantics.

type fakeOrganizationRepo struct {
	orgs []*domain.Organization
}

func (f *fakeOrganizationRepo) Create(_ context.Context, org *domain.Organization) error {
	f.orgs = append(f.orgs, org)
	return nil
}

func (f *fakeOrganizationRepo) GetByID(_ context.Context, id string) (*domain.Organization, error) {
	for _, o := range f.orgs {
		if o.ID == id && o.DeletedAt == nil {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrganizationRepo) GetByIDAny(_ context.Context, id string) (*domain.Organization, error) {
	for _, o := range f.orgs {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrganizationRepo) FirstLive(_ context.Context) (*domain.Organization, error) {
	var first *domain.Organization
	for _, o := range f.orgs {
		if o.DeletedAt != nil {
			continue
		}
		if first == nil || o.Name < first.Name {
			first = o
		}
	}
	return first, nil
}

func (f *fakeOrganizationRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, o := range f.orgs {
		if o.Name == name && o.DeletedAt == nil {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOrganizationRepo) SoftDelete(_ context.Context, id string) error {
	for _, o := range f.orgs {
		if o.ID == id && o.DeletedAt == nil {
			now := time.Now()
			o.DeletedAt = &now
		}
	}
	return nil
}

type fakeCategoryRepo struct {
	categories []*domain.Category
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *domain.Category) error {
	f.categories = append(f.categories, category)
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (*domain.Category, error) {
	for _, c := range f.categories {
		if c.ID == id && c.DeletedAt == nil {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) ListByOrganization(_ context.Context, orgID string) ([]*domain.Category, error) {
	var out []*domain.Category
	for _, c := range f.categories {
		if c.OrganizationID == orgID && c.DeletedAt == nil {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCategoryRepo) ExistsByName(_ context.Context, orgID, name string) (bool, error) {
	for _, c := range f.categories {
		if c.OrganizationID == orgID && c.Name == name && c.DeletedAt == nil {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryRepo) FirstOrganizationID(_ context.Context) (string, error) {
	if len(f.categories) == 0 {
		return "", nil
	}
	return f.categories[0].OrganizationID, nil
}

func (f *fakeCategoryRepo) SoftDelete(_ context.Context, id string) error {
	for _, c := range f.categories {
		if c.ID == id && c.DeletedAt == nil {
			now := time.Now()
			c.DeletedAt = &now
		}
	}
	return nil
}

type fakeZoneRepo struct {
	zones []*domain.Zone
}

func (f *fakeZoneRepo) Create(_ context.Context, zone *domain.Zone) error {
	f.zones = append(f.zones, zone)
	return nil
}

func (f *fakeZoneRepo) GetByID(_ context.Context, id string) (*domain.Zone, error) {
	for _, z := range f.zones {
		if z.ID == id && z.DeletedAt == nil {
			return z, nil
		}
	}
	return nil, nil
}

func (f *fakeZoneRepo) ListByOrganization(_ context.Context, orgID string) ([]*domain.Zone, error) {
	var out []*domain.Zone
	for _, z := range f.zones {
		if z.OrganizationID == orgID && z.DeletedAt == nil {
			out = append(out, z)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeZoneRepo) ExistsByName(_ context.Context, orgID, name string) (bool, error) {
	for _, z := range f.zones {
		if z.OrganizationID == orgID && z.Name == name && z.DeletedAt == nil {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeZoneRepo) SoftDelete(_ context.Context, id string) error {
	for _, z := range f.zones {
		if z.ID == id && z.DeletedAt == nil {
			now := time.Now()
			z.DeletedAt = &now
		}
	}
	return nil
}

type fakeDeviceRepo struct {
	devices []*domain.Device
}

func (f *fakeDeviceRepo) Create(_ context.Context, device *domain.Device) error {
	f.devices = append(f.devices, device)
	return nil
}

func (f *fakeDeviceRepo) GetByID(_ context.Context, id string) (*domain.Device, error) {
	for _, d := range f.devices {
		if d.ID == id && d.DeletedAt == nil {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDeviceRepo) live(orgID, categoryID string) []*domain.Device {
	var out []*domain.Device
	for _, d := range f.devices {
		if d.OrganizationID != orgID || d.DeletedAt != nil {
			continue
		}
		if categoryID != "" && d.CategoryID != categoryID {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (f *fakeDeviceRepo) List(_ context.Context, orgID, categoryID string, limit, offset int) ([]*domain.Device, error) {
	live := f.live(orgID, categoryID)
	if offset >= len(live) {
		return nil, nil
	}
	end := offset + limit
	if end > len(live) {
		end = len(live)
	}
	return live[offset:end], nil
}

func (f *fakeDeviceRepo) Count(_ context.Context, orgID, categoryID string) (int, error) {
	return len(f.live(orgID, categoryID)), nil
}

func (f *fakeDeviceRepo) groupCounts(orgID string, key func(*domain.Device) (string, string)) []*domain.GroupCount {
	totals := map[string]*domain.GroupCount{}
	for _, d := range f.live(orgID, "") {
		id, name := key(d)
		if g, ok := totals[id]; ok {
			g.Total++
		} else {
			totals[id] = &domain.GroupCount{ID: id, Name: name, Total: 1}
		}
	}
	out := make([]*domain.GroupCount, 0, len(totals))
	for _, g := range totals {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (f *fakeDeviceRepo) CountByCategory(_ context.Context, orgID string) ([]*domain.GroupCount, error) {
	return f.groupCounts(orgID, func(d *domain.Device) (string, string) {
		return d.CategoryID, d.CategoryName
	}), nil
}

func (f *fakeDeviceRepo) CountByZone(_ context.Context, orgID string) ([]*domain.GroupCount, error) {
	return f.groupCounts(orgID, func(d *domain.Device) (string, string) {
		return d.ZoneID, d.ZoneName
	}), nil
}

func (f *fakeDeviceRepo) CountByCategoryID(_ context.Context, categoryID string) (int, error) {
	count := 0
	for _, d := range f.devices {
		if d.CategoryID == categoryID && d.DeletedAt == nil {
			count++
		}
	}
	return count, nil
}

func (f *fakeDeviceRepo) CountByZoneID(_ context.Context, zoneID string) (int, error) {
	count := 0
	for _, d := range f.devices {
		if d.ZoneID == zoneID && d.DeletedAt == nil {
			count++
		}
	}
	return count, nil
}

func (f *fakeDeviceRepo) ExistsByName(_ context.Context, orgID, name string) (bool, error) {
	for _, d := range f.devices {
		if d.OrganizationID == orgID && d.Name == name && d.DeletedAt == nil {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDeviceRepo) FirstOrganizationID(_ context.Context) (string, error) {
	if len(f.devices) == 0 {
		return "", nil
	}
	return f.devices[0].OrganizationID, nil
}

func (f *fakeDeviceRepo) SoftDelete(_ context.Context, id string) error {
	for _, d := range f.devices {
		if d.ID == id && d.DeletedAt == nil {
			now := time.Now()
			d.DeletedAt = &now
		}
	}
	return nil
}

type fakeMeasurementRepo struct {
	measurements []*domain.Measurement
}

func (f *fakeMeasurementRepo) Create(_ context.Context, measurement *domain.Measurement) error {
	f.measurements = append(f.measurements, measurement)
	return nil
}

func (f *fakeMeasurementRepo) liveByOrg(orgID string) []*domain.Measurement {
	var out []*domain.Measurement
	for _, m := range f.measurements {
		if m.OrganizationID == orgID && m.DeletedAt == nil {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MeasuredAt.After(out[j].MeasuredAt) })
	return out
}

func (f *fakeMeasurementRepo) Latest(_ context.Context, orgID string, limit int) ([]*domain.Measurement, error) {
	live := f.liveByOrg(orgID)
	if limit < len(live) {
		live = live[:limit]
	}
	return live, nil
}

func (f *fakeMeasurementRepo) ListByOrganization(_ context.Context, orgID string, limit, offset int) ([]*domain.Measurement, error) {
	live := f.liveByOrg(orgID)
	if offset >= len(live) {
		return nil, nil
	}
	end := offset + limit
	if end > len(live) {
		end = len(live)
	}
	return live[offset:end], nil
}

func (f *fakeMeasurementRepo) CountByOrganization(_ context.Context, orgID string) (int, error) {
	return len(f.liveByOrg(orgID)), nil
}

func (f *fakeMeasurementRepo) ListByDevice(_ context.Context, deviceID string, limit int) ([]*domain.Measurement, error) {
	var out []*domain.Measurement
	for _, m := range f.measurements {
		if m.DeviceID == deviceID && m.DeletedAt == nil {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MeasuredAt.After(out[j].MeasuredAt) })
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeMeasurementRepo) FirstOrganizationID(_ context.Context) (string, error) {
	if len(f.measurements) == 0 {
		return "", nil
	}
	return f.measurements[0].OrganizationID, nil
}

type fakeAlertRepo struct {
	alerts []*domain.Alert
}

func (f *fakeAlertRepo) Create(_ context.Context, alert *domain.Alert) error {
	f.alerts = append(f.alerts, alert)
	return nil
}

func (f *fakeAlertRepo) liveSince(orgID string, since time.Time) []*domain.Alert {
	var out []*domain.Alert
	for _, a := range f.alerts {
		if a.OrganizationID == orgID && a.DeletedAt == nil && !a.OccurredAt.Before(since) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredAt.After(out[j].OccurredAt) })
	return out
}

func (f *fakeAlertRepo) ListSince(_ context.Context, orgID string, since time.Time, limit, offset int) ([]*domain.Alert, error) {
	live := f.liveSince(orgID, since)
	if offset >= len(live) {
		return nil, nil
	}
	end := offset + limit
	if end > len(live) {
		end = len(live)
	}
	return live[offset:end], nil
}

func (f *fakeAlertRepo) CountSince(_ context.Context, orgID string, since time.Time) (int, error) {
	return len(f.liveSince(orgID, since)), nil
}

func (f *fakeAlertRepo) SeverityCountsSince(_ context.Context, orgID string, since time.Time) ([]*domain.SeverityCount, error) {
	totals := map[domain.Severity]int{}
	for _, a := range f.liveSince(orgID, since) {
		totals[a.Severity]++
	}
	out := make([]*domain.SeverityCount, 0, len(totals))
	for severity, total := range totals {
		out = append(out, &domain.SeverityCount{
			Severity:        severity,
			SeverityDisplay: severity.DisplayName(),
			Total:           total,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Severity < out[j].Severity })
	return out, nil
}

func (f *fakeAlertRepo) ListByDevice(_ context.Context, deviceID string, limit int) ([]*domain.Alert, error) {
	var out []*domain.Alert
	for _, a := range f.alerts {
		if a.DeviceID == deviceID && a.DeletedAt == nil {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredAt.After(out[j].OccurredAt) })
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeAlertRepo) FirstOrganizationID(_ context.Context) (string, error) {
	if len(f.alerts) == 0 {
		return "", nil
	}
	return f.alerts[0].OrganizationID, nil
}
