package seed

import "github.com/yigit/schedulocity/internal/app/models"

type userFixture struct {
	user     models.User
	password string
}

// Demo accounts. Passwords are hashed when the store is built.
var userFixtures = []userFixture{
	{models.User{ID: 1, Username: "john.doe", Role: models.RoleFaculty, Name: "Dr. John Doe", Department: "Computer Science", Email: "john.doe@university.edu"}, "faculty123"},
	{models.User{ID: 2, Username: "jane.smith", Role: models.RoleFaculty, Name: "Dr. Jane Smith", Department: "Mathematics", Email: "jane.smith@university.edu"}, "faculty123"},
	{models.User{ID: 3, Username: "bob.wilson", Role: models.RoleFaculty, Name: "Prof. Bob Wilson", Department: "Physics", Email: "bob.wilson@university.edu"}, "faculty123"},
	{models.User{ID: 31, Username: "alice.johnson", Role: models.RoleHOD, Name: "Dr. Alice Johnson", Department: "Computer Science", Email: "alice.johnson@university.edu"}, "hod123"},
	{models.User{ID: 32, Username: "david.brown", Role: models.RoleHOD, Name: "Dr. David Brown", Department: "Mathematics", Email: "david.brown@university.edu"}, "hod123"},
	{models.User{ID: 51, Username: "admin", Role: models.RoleAdministrator, Name: "System Administrator", Department: "IT Services", Email: "admin@university.edu"}, "admin123"},
	{models.User{ID: 52, Username: "sarah.admin", Role: models.RoleAdministrator, Name: "Sarah Williams", Department: "Academic Affairs", Email: "sarah.williams@university.edu"}, "admin123"},
}

var facultyRoster = []models.FacultyMember{
	{ID: 1, Name: "Dr. John Doe", Department: "Computer Science", Subjects: []string{"Programming", "Data Structures", "Algorithms"}, Availability: models.AvailabilityAvailable, Email: "john.doe@university.edu", Phone: "+1-555-0101"},
	{ID: 2, Name: "Dr. Jane Smith", Department: "Mathematics", Subjects: []string{"Calculus", "Linear Algebra", "Statistics"}, Availability: models.AvailabilityAvailable, Email: "jane.smith@university.edu", Phone: "+1-555-0102"},
	{ID: 3, Name: "Prof. Bob Wilson", Department: "Physics", Subjects: []string{"Mechanics", "Thermodynamics", "Quantum Physics"}, Availability: models.AvailabilityOnLeave, Email: "bob.wilson@university.edu", Phone: "+1-555-0103"},
	{ID: 4, Name: "Dr. Sarah Davis", Department: "Chemistry", Subjects: []string{"Organic Chemistry", "Inorganic Chemistry", "Physical Chemistry"}, Availability: models.AvailabilityAvailable, Email: "sarah.davis@university.edu", Phone: "+1-555-0104"},
	{ID: 5, Name: "Prof. Michael Chen", Department: "Biology", Subjects: []string{"Cell Biology", "Genetics", "Ecology"}, Availability: models.AvailabilityAvailable, Email: "michael.chen@university.edu", Phone: "+1-555-0105"},
	{ID: 6, Name: "Dr. Emily Johnson", Department: "English", Subjects: []string{"Literature", "Creative Writing", "Linguistics"}, Availability: models.AvailabilityBusy, Email: "emily.johnson@university.edu", Phone: "+1-555-0106"},
	{ID: 7, Name: "Prof. David Lee", Department: "History", Subjects: []string{"World History", "Ancient Civilizations", "Modern History"}, Availability: models.AvailabilityAvailable, Email: "david.lee@university.edu", Phone: "+1-555-0107"},
	{ID: 8, Name: "Dr. Lisa Wang", Department: "Economics", Subjects: []string{"Microeconomics", "Macroeconomics", "Econometrics"}, Availability: models.AvailabilityAvailable, Email: "lisa.wang@university.edu", Phone: "+1-555-0108"},
	{ID: 9, Name: "Prof. James Miller", Department: "Psychology", Subjects: []string{"Cognitive Psychology", "Social Psychology", "Research Methods"}, Availability: models.AvailabilityAvailable, Email: "james.miller@university.edu", Phone: "+1-555-0109"},
	{ID: 10, Name: "Dr. Maria Garcia", Department: "Sociology", Subjects: []string{"Social Theory", "Research Methods", "Urban Sociology"}, Availability: models.AvailabilityOnLeave, Email: "maria.garcia@university.edu", Phone: "+1-555-0110"},
	{ID: 11, Name: "Prof. Robert Taylor", Department: "Philosophy", Subjects: []string{"Ethics", "Logic", "Ancient Philosophy"}, Availability: models.AvailabilityAvailable, Email: "robert.taylor@university.edu", Phone: "+1-555-0111"},
	{ID: 12, Name: "Dr. Helen Chang", Department: "Art", Subjects: []string{"Drawing", "Painting", "Art History"}, Availability: models.AvailabilityAvailable, Email: "helen.chang@university.edu", Phone: "+1-555-0112"},
	{ID: 13, Name: "Prof. Thomas Anderson", Department: "Music", Subjects: []string{"Music Theory", "Composition", "Performance"}, Availability: models.AvailabilityBusy, Email: "thomas.anderson@university.edu", Phone: "+1-555-0113"},
	{ID: 14, Name: "Dr. Rachel Green", Department: "Geography", Subjects: []string{"Physical Geography", "Human Geography", "GIS"}, Availability: models.AvailabilityAvailable, Email: "rachel.green@university.edu", Phone: "+1-555-0114"},
	{ID: 15, Name: "Prof. Steven Clark", Department: "Political Science", Subjects: []string{"Comparative Politics", "International Relations", "Public Policy"}, Availability: models.AvailabilityAvailable, Email: "steven.clark@university.edu", Phone: "+1-555-0115"},
	{ID: 16, Name: "Dr. Anna Rodriguez", Department: "Anthropology", Subjects: []string{"Cultural Anthropology", "Archaeology", "Linguistic Anthropology"}, Availability: models.AvailabilityAvailable, Email: "anna.rodriguez@university.edu", Phone: "+1-555-0116"},
	{ID: 17, Name: "Prof. Mark Thompson", Department: "Engineering", Subjects: []string{"Mechanical Engineering", "Thermodynamics", "Fluid Mechanics"}, Availability: models.AvailabilityOnLeave, Email: "mark.thompson@university.edu", Phone: "+1-555-0117"},
	{ID: 18, Name: "Dr. Jennifer White", Department: "Nursing", Subjects: []string{"Anatomy", "Physiology", "Patient Care"}, Availability: models.AvailabilityAvailable, Email: "jennifer.white@university.edu", Phone: "+1-555-0118"},
	{ID: 19, Name: "Prof. Kevin Moore", Department: "Business", Subjects: []string{"Marketing", "Finance", "Management"}, Availability: models.AvailabilityAvailable, Email: "kevin.moore@university.edu", Phone: "+1-555-0119"},
	{ID: 20, Name: "Dr. Amy Davis", Department: "Education", Subjects: []string{"Educational Psychology", "Curriculum Development", "Assessment"}, Availability: models.AvailabilityBusy, Email: "amy.davis@university.edu", Phone: "+1-555-0120"},
	{ID: 21, Name: "Prof. Daniel Kim", Department: "Computer Science", Subjects: []string{"Machine Learning", "Database Systems", "Software Engineering"}, Availability: models.AvailabilityAvailable, Email: "daniel.kim@university.edu", Phone: "+1-555-0121"},
	{ID: 22, Name: "Dr. Nicole Brown", Department: "Mathematics", Subjects: []string{"Discrete Mathematics", "Number Theory", "Applied Mathematics"}, Availability: models.AvailabilityAvailable, Email: "nicole.brown@university.edu", Phone: "+1-555-0122"},
	{ID: 23, Name: "Prof. Chris Wilson", Department: "Physics", Subjects: []string{"Electromagnetism", "Optics", "Nuclear Physics"}, Availability: models.AvailabilityAvailable, Email: "chris.wilson@university.edu", Phone: "+1-555-0123"},
	{ID: 24, Name: "Dr. Laura Martinez", Department: "Chemistry", Subjects: []string{"Analytical Chemistry", "Biochemistry", "Environmental Chemistry"}, Availability: models.AvailabilityOnLeave, Email: "laura.martinez@university.edu", Phone: "+1-555-0124"},
	{ID: 25, Name: "Prof. Brian Jackson", Department: "Biology", Subjects: []string{"Molecular Biology", "Microbiology", "Evolution"}, Availability: models.AvailabilityAvailable, Email: "brian.jackson@university.edu", Phone: "+1-555-0125"},
	{ID: 26, Name: "Dr. Michelle Lee", Department: "English", Subjects: []string{"American Literature", "British Literature", "Composition"}, Availability: models.AvailabilityAvailable, Email: "michelle.lee@university.edu", Phone: "+1-555-0126"},
	{ID: 27, Name: "Prof. Ryan Taylor", Department: "History", Subjects: []string{"European History", "American History", "Historical Methods"}, Availability: models.AvailabilityBusy, Email: "ryan.taylor@university.edu", Phone: "+1-555-0127"},
	{ID: 28, Name: "Dr. Stephanie Chen", Department: "Psychology", Subjects: []string{"Developmental Psychology", "Abnormal Psychology", "Statistics"}, Availability: models.AvailabilityAvailable, Email: "stephanie.chen@university.edu", Phone: "+1-555-0128"},
	{ID: 29, Name: "Prof. Andrew Miller", Department: "Engineering", Subjects: []string{"Electrical Engineering", "Circuit Analysis", "Digital Systems"}, Availability: models.AvailabilityAvailable, Email: "andrew.miller@university.edu", Phone: "+1-555-0129"},
	{ID: 30, Name: "Dr. Jessica Garcia", Department: "Business", Subjects: []string{"Accounting", "Operations Management", "Strategic Management"}, Availability: models.AvailabilityAvailable, Email: "jessica.garcia@university.edu", Phone: "+1-555-0130"},
}

var subjectCatalog = []models.Subject{
	{ID: 1, Name: "Programming Fundamentals", Department: "Computer Science", Credits: 3, Semester: 1},
	{ID: 2, Name: "Data Structures", Department: "Computer Science", Credits: 4, Semester: 2},
	{ID: 3, Name: "Algorithms", Department: "Computer Science", Credits: 4, Semester: 3},
	{ID: 4, Name: "Database Systems", Department: "Computer Science", Credits: 3, Semester: 4},
	{ID: 5, Name: "Software Engineering", Department: "Computer Science", Credits: 3, Semester: 5},
	{ID: 6, Name: "Machine Learning", Department: "Computer Science", Credits: 4, Semester: 6},
	{ID: 7, Name: "Computer Networks", Department: "Computer Science", Credits: 3, Semester: 5},
	{ID: 8, Name: "Operating Systems", Department: "Computer Science", Credits: 4, Semester: 4},
	{ID: 9, Name: "Web Development", Department: "Computer Science", Credits: 3, Semester: 3},
	{ID: 10, Name: "Mobile App Development", Department: "Computer Science", Credits: 3, Semester: 6},
	{ID: 11, Name: "Calculus I", Department: "Mathematics", Credits: 4, Semester: 1},
	{ID: 12, Name: "Calculus II", Department: "Mathematics", Credits: 4, Semester: 2},
	{ID: 13, Name: "Linear Algebra", Department: "Mathematics", Credits: 3, Semester: 2},
	{ID: 14, Name: "Differential Equations", Department: "Mathematics", Credits: 3, Semester: 3},
	{ID: 15, Name: "Statistics", Department: "Mathematics", Credits: 3, Semester: 3},
	{ID: 16, Name: "Discrete Mathematics", Department: "Mathematics", Credits: 3, Semester: 1},
	{ID: 17, Name: "Number Theory", Department: "Mathematics", Credits: 3, Semester: 4},
	{ID: 18, Name: "Abstract Algebra", Department: "Mathematics", Credits: 4, Semester: 5},
	{ID: 19, Name: "Real Analysis", Department: "Mathematics", Credits: 4, Semester: 5},
	{ID: 20, Name: "Applied Mathematics", Department: "Mathematics", Credits: 3, Semester: 6},
	{ID: 21, Name: "Mechanics", Department: "Physics", Credits: 4, Semester: 1},
	{ID: 22, Name: "Thermodynamics", Department: "Physics", Credits: 3, Semester: 2},
	{ID: 23, Name: "Electromagnetism", Department: "Physics", Credits: 4, Semester: 3},
	{ID: 24, Name: "Quantum Physics", Department: "Physics", Credits: 4, Semester: 4},
	{ID: 25, Name: "Optics", Department: "Physics", Credits: 3, Semester: 3},
	{ID: 26, Name: "Nuclear Physics", Department: "Physics", Credits: 3, Semester: 5},
	{ID: 27, Name: "Solid State Physics", Department: "Physics", Credits: 4, Semester: 6},
	{ID: 28, Name: "Astrophysics", Department: "Physics", Credits: 3, Semester: 6},
	{ID: 29, Name: "Mathematical Physics", Department: "Physics", Credits: 3, Semester: 4},
	{ID: 30, Name: "Experimental Physics", Department: "Physics", Credits: 2, Semester: 2},
	{ID: 31, Name: "General Chemistry", Department: "Chemistry", Credits: 4, Semester: 1},
	{ID: 32, Name: "Organic Chemistry", Department: "Chemistry", Credits: 4, Semester: 2},
	{ID: 33, Name: "Inorganic Chemistry", Department: "Chemistry", Credits: 3, Semester: 3},
	{ID: 34, Name: "Physical Chemistry", Department: "Chemistry", Credits: 4, Semester: 4},
	{ID: 35, Name: "Analytical Chemistry", Department: "Chemistry", Credits: 3, Semester: 3},
	{ID: 36, Name: "Biochemistry", Department: "Chemistry", Credits: 4, Semester: 5},
	{ID: 37, Name: "Environmental Chemistry", Department: "Chemistry", Credits: 3, Semester: 6},
	{ID: 38, Name: "Medicinal Chemistry", Department: "Chemistry", Credits: 3, Semester: 6},
	{ID: 39, Name: "Polymer Chemistry", Department: "Chemistry", Credits: 3, Semester: 5},
	{ID: 40, Name: "Chemistry Lab", Department: "Chemistry", Credits: 2, Semester: 1},
	{ID: 41, Name: "Cell Biology", Department: "Biology", Credits: 3, Semester: 1},
	{ID: 42, Name: "Genetics", Department: "Biology", Credits: 4, Semester: 2},
	{ID: 43, Name: "Ecology", Department: "Biology", Credits: 3, Semester: 3},
	{ID: 44, Name: "Molecular Biology", Department: "Biology", Credits: 4, Semester: 4},
	{ID: 45, Name: "Microbiology", Department: "Biology", Credits: 3, Semester: 3},
	{ID: 46, Name: "Evolution", Department: "Biology", Credits: 3, Semester: 5},
	{ID: 47, Name: "Anatomy", Department: "Biology", Credits: 4, Semester: 2},
	{ID: 48, Name: "Physiology", Department: "Biology", Credits: 4, Semester: 3},
	{ID: 49, Name: "Biotechnology", Department: "Biology", Credits: 3, Semester: 6},
	{ID: 50, Name: "Marine Biology", Department: "Biology", Credits: 3, Semester: 6},
	{ID: 51, Name: "Engineering Mechanics", Department: "Engineering", Credits: 4, Semester: 1},
	{ID: 52, Name: "Thermodynamics", Department: "Engineering", Credits: 3, Semester: 2},
	{ID: 53, Name: "Fluid Mechanics", Department: "Engineering", Credits: 4, Semester: 3},
	{ID: 54, Name: "Electrical Engineering", Department: "Engineering", Credits: 4, Semester: 2},
	{ID: 55, Name: "Circuit Analysis", Department: "Engineering", Credits: 3, Semester: 3},
	{ID: 56, Name: "Digital Systems", Department: "Engineering", Credits: 3, Semester: 4},
	{ID: 57, Name: "Control Systems", Department: "Engineering", Credits: 4, Semester: 5},
	{ID: 58, Name: "Materials Science", Department: "Engineering", Credits: 3, Semester: 4},
	{ID: 59, Name: "Manufacturing Processes", Department: "Engineering", Credits: 3, Semester: 5},
	{ID: 60, Name: "Project Management", Department: "Engineering", Credits: 3, Semester: 6},
	{ID: 61, Name: "Accounting Principles", Department: "Business", Credits: 3, Semester: 1},
	{ID: 62, Name: "Marketing Fundamentals", Department: "Business", Credits: 3, Semester: 2},
	{ID: 63, Name: "Finance", Department: "Business", Credits: 4, Semester: 3},
	{ID: 64, Name: "Management", Department: "Business", Credits: 3, Semester: 2},
	{ID: 65, Name: "Operations Management", Department: "Business", Credits: 3, Semester: 4},
	{ID: 66, Name: "Strategic Management", Department: "Business", Credits: 4, Semester: 6},
	{ID: 67, Name: "Human Resources", Department: "Business", Credits: 3, Semester: 4},
	{ID: 68, Name: "International Business", Department: "Business", Credits: 3, Semester: 5},
	{ID: 69, Name: "Entrepreneurship", Department: "Business", Credits: 3, Semester: 6},
	{ID: 70, Name: "Business Ethics", Department: "Business", Credits: 2, Semester: 5},
	{ID: 71, Name: "English Composition", Department: "English", Credits: 3, Semester: 1},
	{ID: 72, Name: "American Literature", Department: "English", Credits: 3, Semester: 2},
	{ID: 73, Name: "British Literature", Department: "English", Credits: 3, Semester: 3},
	{ID: 74, Name: "Creative Writing", Department: "English", Credits: 3, Semester: 4},
	{ID: 75, Name: "Linguistics", Department: "English", Credits: 3, Semester: 5},
	{ID: 76, Name: "World Literature", Department: "English", Credits: 3, Semester: 6},
	{ID: 77, Name: "Poetry", Department: "English", Credits: 2, Semester: 4},
	{ID: 78, Name: "Drama", Department: "English", Credits: 2, Semester: 5},
	{ID: 79, Name: "Technical Writing", Department: "English", Credits: 3, Semester: 3},
	{ID: 80, Name: "Literary Criticism", Department: "English", Credits: 3, Semester: 6},
	{ID: 81, Name: "World History", Department: "History", Credits: 3, Semester: 1},
	{ID: 82, Name: "American History", Department: "History", Credits: 3, Semester: 2},
	{ID: 83, Name: "European History", Department: "History", Credits: 3, Semester: 3},
	{ID: 84, Name: "Ancient Civilizations", Department: "History", Credits: 3, Semester: 1},
	{ID: 85, Name: "Modern History", Department: "History", Credits: 3, Semester: 4},
	{ID: 86, Name: "Historical Methods", Department: "History", Credits: 2, Semester: 5},
	{ID: 87, Name: "Cultural History", Department: "History", Credits: 3, Semester: 5},
	{ID: 88, Name: "Military History", Department: "History", Credits: 3, Semester: 6},
	{ID: 89, Name: "Economic History", Department: "History", Credits: 3, Semester: 6},
	{ID: 90, Name: "Social History", Department: "History", Credits: 3, Semester: 4},
	{ID: 91, Name: "Introduction to Psychology", Department: "Psychology", Credits: 3, Semester: 1},
	{ID: 92, Name: "Cognitive Psychology", Department: "Psychology", Credits: 3, Semester: 2},
	{ID: 93, Name: "Social Psychology", Department: "Psychology", Credits: 3, Semester: 3},
	{ID: 94, Name: "Developmental Psychology", Department: "Psychology", Credits: 3, Semester: 4},
	{ID: 95, Name: "Abnormal Psychology", Department: "Psychology", Credits: 3, Semester: 5},
	{ID: 96, Name: "Research Methods", Department: "Psychology", Credits: 4, Semester: 2},
	{ID: 97, Name: "Statistics", Department: "Psychology", Credits: 3, Semester: 3},
	{ID: 98, Name: "Personality Psychology", Department: "Psychology", Credits: 3, Semester: 6},
	{ID: 99, Name: "Clinical Psychology", Department: "Psychology", Credits: 4, Semester: 6},
	{ID: 100, Name: "Health Psychology", Department: "Psychology", Credits: 3, Semester: 5},
}

var studentBatches = []models.StudentBatch{
	{ID: 1, Name: "CS-2024-A", Department: "Computer Science", Year: 2024, Semester: 1, Strength: 60},
	{ID: 2, Name: "CS-2024-B", Department: "Computer Science", Year: 2024, Semester: 1, Strength: 55},
	{ID: 3, Name: "CS-2023-A", Department: "Computer Science", Year: 2023, Semester: 3, Strength: 58},
	{ID: 4, Name: "CS-2023-B", Department: "Computer Science", Year: 2023, Semester: 3, Strength: 52},
	{ID: 5, Name: "MATH-2024-A", Department: "Mathematics", Year: 2024, Semester: 1, Strength: 45},
	{ID: 6, Name: "MATH-2023-A", Department: "Mathematics", Year: 2023, Semester: 3, Strength: 42},
	{ID: 7, Name: "PHY-2024-A", Department: "Physics", Year: 2024, Semester: 1, Strength: 38},
	{ID: 8, Name: "PHY-2023-A", Department: "Physics", Year: 2023, Semester: 3, Strength: 40},
	{ID: 9, Name: "CHEM-2024-A", Department: "Chemistry", Year: 2024, Semester: 1, Strength: 35},
	{ID: 10, Name: "CHEM-2023-A", Department: "Chemistry", Year: 2023, Semester: 3, Strength: 37},
}

// Fixed rows always present ahead of the generated week.
var sampleTimetable = []models.TimetableEntry{
	{ID: 1, Day: "Monday", TimeSlot: "09:00-10:00", Subject: "Programming Fundamentals", Faculty: "Dr. John Doe", Classroom: "Room 101", Batch: "CS-2024-A", Department: "Computer Science"},
	{ID: 2, Day: "Monday", TimeSlot: "10:00-11:00", Subject: "Calculus I", Faculty: "Dr. Jane Smith", Classroom: "Room 205", Batch: "CS-2024-A", Department: "Computer Science"},
	{ID: 3, Day: "Tuesday", TimeSlot: "09:00-10:00", Subject: "Data Structures", Faculty: "Prof. Daniel Kim", Classroom: "Lab 001", Batch: "CS-2023-A", Department: "Computer Science"},
}

// Department is filled from the roster when the store is built.
var leaveRequests = []models.LeaveRequest{
	{ID: 1, FacultyID: 3, FacultyName: "Prof. Bob Wilson", StartDate: "2024-12-20", EndDate: "2024-12-22", Reason: "Medical", Status: models.LeaveApproved, RequestDate: "2024-12-15"},
	{ID: 2, FacultyID: 10, FacultyName: "Dr. Maria Garcia", StartDate: "2024-12-25", EndDate: "2024-12-30", Reason: "Personal", Status: models.LeavePending, RequestDate: "2024-12-18"},
	{ID: 3, FacultyID: 1, FacultyName: "Dr. John Doe", StartDate: "2024-12-15", EndDate: "2024-12-16", Reason: "Conference", Status: models.LeaveApproved, RequestDate: "2024-12-10", ApprovedBy: "Dr. Alice Johnson", ApprovedDate: "2024-12-11"},
	{ID: 4, FacultyID: 1, FacultyName: "Dr. John Doe", StartDate: "2024-11-28", EndDate: "2024-11-28", Reason: "Personal", Status: models.LeaveRejected, RequestDate: "2024-11-25", RejectedBy: "Dr. Alice Johnson", RejectedDate: "2024-11-26", RejectionReason: "Important exam scheduled"},
	{ID: 5, FacultyID: 21, FacultyName: "Prof. Daniel Kim", StartDate: "2024-12-28", EndDate: "2024-12-30", Reason: "Personal", Description: "Family function attendance", Status: models.LeavePending, RequestDate: "2024-12-20"},
	{ID: 6, FacultyID: 22, FacultyName: "Dr. Nicole Brown", StartDate: "2024-12-23", EndDate: "2024-12-23", Reason: "Medical", Description: "Doctor appointment", Status: models.LeavePending, RequestDate: "2024-12-18"},
	{ID: 7, FacultyID: 1, FacultyName: "Dr. John Doe", StartDate: "2024-11-15", EndDate: "2024-11-16", Reason: "Conference", Status: models.LeaveApproved, RequestDate: "2024-11-10", ApprovedBy: "Dr. Alice Johnson", ApprovedDate: "2024-11-12"},
}

var (
	classroomTypes     = []string{"Lecture Hall", "Seminar Room", "Laboratory", "Computer Lab"}
	classroomEquipment = []string{"Projector", "Whiteboard", "Smart Board", "Audio System"}
	labTypes           = []string{"Computer Lab", "Physics Lab", "Chemistry Lab", "Biology Lab", "Engineering Lab"}
	labEquipment       = []string{"Computers", "Lab Equipment", "Safety Equipment", "Measuring Instruments"}
)
