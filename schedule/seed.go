package schedule

import "slices"

type Section struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Theme       string   `json:"theme"`
	Seed        []Course `json:"-"`
}

// StorageKey is the persisted slice key holding the section's courses
func (s Section) StorageKey() string {
	return s.ID + "-courses"
}

const HolidaysKey = "holidays"

var sections = []Section{
	{
		ID:          "section-a",
		Title:       "Section A - Computer Science & Mathematics",
		Description: "Computer Science and Mathematics courses",
		Theme:       "blue",
		Seed: []Course{
			{ID: "1", Name: "Data Structures and Algorithms", Instructor: "Dr. Sarah Johnson", Room: "CS-101", Time: "9:00 AM - 10:30 AM", Days: []string{"Monday", "Wednesday", "Friday"}, Credits: 4},
			{ID: "2", Name: "Calculus III", Instructor: "Prof. Michael Chen", Room: "MATH-205", Time: "11:00 AM - 12:30 PM", Days: []string{"Tuesday", "Thursday"}, Credits: 4},
			{ID: "3", Name: "Database Management Systems", Instructor: "Dr. Emily Rodriguez", Room: "CS-203", Time: "2:00 PM - 3:30 PM", Days: []string{"Monday", "Wednesday"}, Credits: 3},
			{ID: "4", Name: "Computer Graphics", Instructor: "Prof. David Kim", Room: "CS-301", Time: "10:00 AM - 11:30 AM", Days: []string{"Tuesday", "Thursday"}, Credits: 3},
			{ID: "5", Name: "Linear Algebra", Instructor: "Dr. Jessica Miller", Room: "MATH-108", Time: "1:00 PM - 2:30 PM", Days: []string{"Monday", "Wednesday", "Friday"}, Credits: 3},
		},
	},
	{
		ID:          "section-b",
		Title:       "Section B - Business & Economics",
		Description: "Business and Economics courses",
		Theme:       "green",
		Seed: []Course{
			{ID: "6", Name: "Financial Accounting", Instructor: "Prof. Robert Wilson", Room: "BUS-102", Time: "9:00 AM - 10:30 AM", Days: []string{"Monday", "Wednesday", "Friday"}, Credits: 3},
			{ID: "7", Name: "Microeconomics", Instructor: "Dr. Lisa Thompson", Room: "ECON-201", Time: "11:00 AM - 12:30 PM", Days: []string{"Tuesday", "Thursday"}, Credits: 3},
			{ID: "8", Name: "Business Statistics", Instructor: "Prof. James Anderson", Room: "BUS-205", Time: "2:00 PM - 3:30 PM", Days: []string{"Monday", "Wednesday"}, Credits: 3},
			{ID: "9", Name: "Marketing Management", Instructor: "Dr. Maria Garcia", Room: "BUS-301", Time: "10:00 AM - 11:30 AM", Days: []string{"Tuesday", "Thursday"}, Credits: 3},
			{ID: "10", Name: "Operations Management", Instructor: "Prof. Steven Lee", Room: "BUS-210", Time: "1:00 PM - 2:30 PM", Days: []string{"Monday", "Wednesday", "Friday"}, Credits: 3},
		},
	},
	{
		ID:          "section-c",
		Title:       "Section C - Liberal Arts & Social Sciences",
		Description: "Liberal Arts and Social Sciences courses",
		Theme:       "orange",
		Seed: []Course{
			{ID: "11", Name: "American Literature", Instructor: "Dr. Catherine Brown", Room: "ENG-105", Time: "9:00 AM - 10:30 AM", Days: []string{"Monday", "Wednesday", "Friday"}, Credits: 3},
			{ID: "12", Name: "World History", Instructor: "Prof. Thomas Davis", Room: "HIST-201", Time: "11:00 AM - 12:30 PM", Days: []string{"Tuesday", "Thursday"}, Credits: 3},
			{ID: "13", Name: "Introduction to Psychology", Instructor: "Dr. Rachel Martinez", Room: "PSYC-101", Time: "2:00 PM - 3:30 PM", Days: []string{"Monday", "Wednesday"}, Credits: 3},
			{ID: "14", Name: "Philosophy of Ethics", Instructor: "Prof. William Turner", Room: "PHIL-205", Time: "10:00 AM - 11:30 AM", Days: []string{"Tuesday", "Thursday"}, Credits: 3},
			{ID: "15", Name: "Sociology of Culture", Instructor: "Dr. Amanda Clark", Room: "SOC-203", Time: "1:00 PM - 2:30 PM", Days: []string{"Monday", "Wednesday", "Friday"}, Credits: 3},
		},
	},
}

var seedHolidays = []Holiday{
	{ID: "1", Name: "Labor Day", Date: "2024-09-02", Type: HolidayNational, Description: "Federal holiday celebrating the achievements of workers"},
	{ID: "2", Name: "Fall Break", Date: "2024-10-14", Type: HolidayAcademic, Description: "Mid-semester break for students and faculty"},
	{ID: "3", Name: "Thanksgiving Break", Date: "2024-11-28", Type: HolidayAcademic, Description: "Extended holiday break including Thanksgiving Day"},
	{ID: "4", Name: "Christmas Break", Date: "2024-12-23", Type: HolidayAcademic, Description: "Winter break period - classes resume in January"},
	{ID: "5", Name: "Martin Luther King Jr. Day", Date: "2025-01-20", Type: HolidayNational, Description: "Federal holiday honoring civil rights leader"},
	{ID: "6", Name: "Spring Break", Date: "2025-03-10", Type: HolidayAcademic, Description: "Week-long break in the middle of spring semester"},
	{ID: "7", Name: "Memorial Day", Date: "2025-05-26", Type: HolidayNational, Description: "Federal holiday honoring military personnel who died in service"},
	{ID: "8", Name: "Finals Week", Date: "2025-05-05", Type: HolidayAcademic, Description: "Final examinations period - no regular classes"},
	{ID: "9", Name: "Independence Day", Date: "2025-07-04", Type: HolidayNational, Description: "Celebration of American independence"},
	{ID: "10", Name: "Summer Session Begins", Date: "2025-06-02", Type: HolidayAcademic, Description: "Start of summer semester classes"},
}

// Sections returns the three course sections in navigation order. The seed
// data is copied so callers can not alter the defaults.
func Sections() []Section {
	out := make([]Section, len(sections))
	for i, s := range sections {
		s.Seed = cloneCourses(s.Seed)
		out[i] = s
	}
	return out
}

func SectionByID(id string) (Section, bool) {
	for _, s := range Sections() {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

func SeedHolidays() []Holiday {
	return slices.Clone(seedHolidays)
}

func cloneCourses(courses []Course) []Course {
	out := make([]Course, len(courses))
	for i, c := range courses {
		c.Days = slices.Clone(c.Days)
		out[i] = c
	}
	return out
}
