package domain

// Branch is a physical service location. The catalog is configured at build
// time and immutable at runtime.
type Branch struct {
	ID                 string
	Name               string
	Address            string
	Phone              string
	HasFullService     bool // full-service branches offer every category
	MaxBookingsPerSlot int
}

// ServiceCategory groups catalog services.
type ServiceCategory struct {
	ID          string
	Label       string
	Description string
}

// Service is a bookable catalog entry, many-to-one with its category.
type Service struct {
	ID       string
	Name     string
	Category string
}

// CategoryAnuraTyres is the only category available at branches without full
// service.
const CategoryAnuraTyres = "Anura Tyres"

// Branches is the static branch catalog.
var Branches = []Branch{
	{ID: "1", Name: "Pannipitiya Branch", Address: "123 High Level Rd, Pannipitiya", Phone: "011-2851234", HasFullService: true, MaxBookingsPerSlot: 3},
	{ID: "2", Name: "Maharagama Branch", Address: "45 Galle Rd, Maharagama", Phone: "011-2842345", HasFullService: false, MaxBookingsPerSlot: 2},
	{ID: "3", Name: "Nugegoda Branch", Address: "78 High Level Rd, Nugegoda", Phone: "011-2813456", HasFullService: false, MaxBookingsPerSlot: 2},
}

// ServiceCategories is the static category catalog.
var ServiceCategories = []ServiceCategory{
	{ID: CategoryAnuraTyres, Label: "Anura Tyres", Description: "Tyre fitting, balancing & alignment"},
	{ID: "Mechanix", Label: "Mechanix", Description: "Full mechanical services"},
	{ID: "Truck & Bus", Label: "Truck & Bus", Description: "Heavy vehicle services"},
}

// Services is the static service catalog.
var Services = []Service{
	{ID: "t1", Name: "Wheel Alignment", Category: CategoryAnuraTyres},
	{ID: "t2", Name: "Wheel Balancing", Category: CategoryAnuraTyres},
	{ID: "t3", Name: "Tyre Change", Category: CategoryAnuraTyres},
	{ID: "t4", Name: "Tyre Repair (Puncture)", Category: CategoryAnuraTyres},
	{ID: "t5", Name: "Nitrogen Filling", Category: CategoryAnuraTyres},
	{ID: "m1", Name: "Full Service", Category: "Mechanix"},
	{ID: "m2", Name: "Oil Change", Category: "Mechanix"},
	{ID: "m3", Name: "Battery Check & Replace", Category: "Mechanix"},
	{ID: "m4", Name: "Brake Service", Category: "Mechanix"},
	{ID: "m5", Name: "AC Service", Category: "Mechanix"},
	{ID: "b1", Name: "Heavy Vehicle Alignment", Category: "Truck & Bus"},
	{ID: "b2", Name: "Truck Tyre Change", Category: "Truck & Bus"},
	{ID: "b3", Name: "Bus Full Service", Category: "Truck & Bus"},
}

// TimeSlots is the fixed daily schedule: 21 half-hour slots from 08:30 to
// 19:00 with a lunch gap 12:00-13:00.
var TimeSlots = []string{
	"08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00",
	"13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
	"17:00", "17:30", "18:00", "18:30", "19:00",
}

// Bays is the fixed set of service bays staff can be assigned to.
var Bays = []string{"Bay 1", "Bay 2", "Bay 3", "Bay 4", "Bay 5", "Bay 6"}

// BranchByID returns the branch with the given id, or nil.
func BranchByID(id string) *Branch {
	for i := range Branches {
		if Branches[i].ID == id {
			return &Branches[i]
		}
	}
	return nil
}

// CategoriesForBranch returns the categories bookable at branch. Branches
// without full service offer tyre services only.
func CategoriesForBranch(branch *Branch) []ServiceCategory {
	if branch == nil {
		return nil
	}
	if branch.HasFullService {
		return ServiceCategories
	}
	categories := make([]ServiceCategory, 0, 1)
	for _, c := range ServiceCategories {
		if c.ID == CategoryAnuraTyres {
			categories = append(categories, c)
		}
	}
	return categories
}

// CategoryAvailableAtBranch reports whether categoryID is bookable at branch.
func CategoryAvailableAtBranch(branch *Branch, categoryID string) bool {
	for _, c := range CategoriesForBranch(branch) {
		if c.ID == categoryID {
			return true
		}
	}
	return false
}

// ServiceByID returns the catalog service with the given id, or nil.
func ServiceByID(id string) *Service {
	for i := range Services {
		if Services[i].ID == id {
			return &Services[i]
		}
	}
	return nil
}

// IsValidTimeSlot reports whether slot is one of the fixed time slots.
func IsValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// IsValidBay reports whether bay is in the fixed bay set.
func IsValidBay(bay string) bool {
	for _, b := range Bays {
		if b == bay {
			return true
		}
	}
	return false
}
