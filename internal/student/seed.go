package student

// Seed returns the roster the service starts with. Sarah Davis (100000003) has
// two Chemistry records.
func Seed() []*Student {
	return []*Student{
		{ID: "100000020", Name: "Andrew Young", Date: "04/02/2024", Grade: 85, Subject: "Film Studies",
			Email: "andrew.young@email.com", DateJoined: "20/09/2023", Address: "258 Poplar Way", City: "Washington", Country: "USA", Zip: "20001"},
		{ID: "100000002", Name: "Alex Johnson", Date: "16/01/2024", Grade: 85, Subject: "Physics",
			Email: "alex.johnson@email.com", DateJoined: "02/09/2023", Address: "456 Oak Ave", City: "Los Angeles", Country: "USA", Zip: "90210"},
		{ID: "100000011", Name: "Amanda Taylor", Date: "25/01/2024", Grade: 87, Subject: "Literature",
			Email: "amanda.taylor@email.com", DateJoined: "11/09/2023", Address: "852 Ash St", City: "Austin", Country: "USA", Zip: "73301"},
		{ID: "100000024", Name: "Brandon Baker", Date: "08/02/2024", Grade: 83, Subject: "Astronomy",
			Email: "brandon.baker@email.com", DateJoined: "24/09/2023", Address: "963 Maple Street", City: "Portland", Country: "USA", Zip: "97201"},
		{ID: "100000012", Name: "Christopher Lee", Date: "26/01/2024", Grade: 93, Subject: "Economics",
			Email: "christopher.lee@email.com", DateJoined: "12/09/2023", Address: "963 Oak Ridge", City: "Jacksonville", Country: "USA", Zip: "32201"},
		{ID: "100000006", Name: "David Miller", Date: "20/01/2024", Grade: 88, Subject: "Statistics",
			Email: "david.miller@email.com", DateJoined: "06/09/2023", Address: "987 Cedar Ln", City: "Philadelphia", Country: "USA", Zip: "19101"},
		{ID: "100000014", Name: "Daniel Thompson", Date: "28/01/2024", Grade: 91, Subject: "Sociology",
			Email: "daniel.thompson@email.com", DateJoined: "14/09/2023", Address: "258 Cedar Heights", City: "Columbus", Country: "USA", Zip: "43201"},
		{ID: "100000005", Name: "Emily Wilson", Date: "19/01/2024", Grade: 95, Subject: "Calculus",
			Email: "emily.wilson@email.com", DateJoined: "05/09/2023", Address: "654 Maple Dr", City: "Phoenix", Country: "USA", Zip: "85001"},
		{ID: "100000025", Name: "Hannah Adams", Date: "09/02/2024", Grade: 89, Subject: "Meteorology",
			Email: "hannah.adams@email.com", DateJoined: "25/09/2023", Address: "147 Oak Drive", City: "Oklahoma City", Country: "USA", Zip: "73101"},
		{ID: "100000008", Name: "James Rodriguez", Date: "22/01/2024", Grade: 24, Subject: "English",
			Email: "james.rodriguez@email.com", DateJoined: "08/09/2023", Address: "258 Spruce Ct", City: "San Diego", Country: "USA", Zip: "92101"},
		{ID: "100000009", Name: "Jennifer Martinez", Date: "23/01/2024", Grade: 89, Subject: "History",
			Email: "jennifer.martinez@email.com", DateJoined: "09/09/2023", Address: "369 Willow Pl", City: "Dallas", Country: "USA", Zip: "75201"},
		{ID: "100000013", Name: "Jessica White", Date: "27/01/2024", Grade: 86, Subject: "Psychology",
			Email: "jessica.white@email.com", DateJoined: "13/09/2023", Address: "147 Pine Valley", City: "Fort Worth", Country: "USA", Zip: "76101"},
		{ID: "100000028", Name: "Jonathan Mitchell", Date: "12/02/2024", Grade: 93, Subject: "Botany",
			Email: "jonathan.mitchell@email.com", DateJoined: "28/09/2023", Address: "741 Elm Avenue", City: "Kansas City", Country: "USA", Zip: "64101"},
		{ID: "100000016", Name: "Kevin Clark", Date: "30/01/2024", Grade: 84, Subject: "Political Science",
			Email: "kevin.clark@email.com", DateJoined: "16/09/2023", Address: "741 Birch Lane", City: "San Francisco", Country: "USA", Zip: "94101"},
		{ID: "100000023", Name: "Lauren Green", Date: "07/02/2024", Grade: 94, Subject: "Archaeology",
			Email: "lauren.green@email.com", DateJoined: "23/09/2023", Address: "852 Cedar Road", City: "Detroit", Country: "USA", Zip: "48201"},
		{ID: "100000007", Name: "Lisa Garcia", Date: "21/01/2024", Grade: 91, Subject: "Computer Science",
			Email: "lisa.garcia@email.com", DateJoined: "07/09/2023", Address: "147 Birch Way", City: "San Antonio", Country: "USA", Zip: "78201"},
		{ID: "100000004", Name: "Michael Brown", Date: "18/01/2024", Grade: 78, Subject: "Biology",
			Email: "michael.brown@email.com", DateJoined: "04/09/2023", Address: "321 Elm St", City: "Houston", Country: "USA", Zip: "77001"},
		{ID: "100000019", Name: "Michelle Hall", Date: "03/02/2024", Grade: 92, Subject: "Drama",
			Email: "michelle.hall@email.com", DateJoined: "19/09/2023", Address: "147 Spruce Drive", City: "Denver", Country: "USA", Zip: "80201"},
		{ID: "100000001", Name: "Morgan Smith", Date: "15/01/2024", Grade: 98, Subject: "Algebra",
			Email: "morgan.smith@email.com", DateJoined: "01/09/2023", Address: "123 Main St", City: "New York", Country: "USA", Zip: "10001"},
		{ID: "100000015", Name: "Nicole Harris", Date: "29/01/2024", Grade: 89, Subject: "Philosophy",
			Email: "nicole.harris@email.com", DateJoined: "15/09/2023", Address: "369 Maple Grove", City: "Charlotte", Country: "USA", Zip: "28201"},
		{ID: "100000017", Name: "Rachel Lewis", Date: "01/02/2024", Grade: 96, Subject: "Art History",
			Email: "rachel.lewis@email.com", DateJoined: "17/09/2023", Address: "852 Willow Creek", City: "Indianapolis", Country: "USA", Zip: "46201"},
		{ID: "100000010", Name: "Robert Anderson", Date: "24/01/2024", Grade: 94, Subject: "Geography",
			Email: "robert.anderson@email.com", DateJoined: "10/09/2023", Address: "741 Poplar Blvd", City: "San Jose", Country: "USA", Zip: "95101"},
		{ID: "100000022", Name: "Ryan Wright", Date: "06/02/2024", Grade: 87, Subject: "Anthropology",
			Email: "ryan.wright@email.com", DateJoined: "22/09/2023", Address: "741 Pine Street", City: "Nashville", Country: "USA", Zip: "37201"},
		{ID: "100000003", Name: "Sarah Davis", Date: "17/01/2024", Grade: 92, Subject: "Chemistry",
			Email: "sarah.davis@email.com", DateJoined: "03/09/2023", Address: "789 Pine Rd", City: "Chicago", Country: "USA", Zip: "60601"},
		{ID: "100000003", Name: "Sarah Davis", Date: "19/01/2024", Grade: 92, Subject: "Chemistry",
			Email: "sarah.davis@email.com", DateJoined: "03/09/2023", Address: "789 Pine Rd", City: "Chicago", Country: "USA", Zip: "60601"},
		{ID: "100000027", Name: "Samantha Carter", Date: "11/02/2024", Grade: 86, Subject: "Geology",
			Email: "samantha.carter@email.com", DateJoined: "27/09/2023", Address: "369 Willow Street", City: "Cleveland", Country: "USA", Zip: "44101"},
		{ID: "100000021", Name: "Stephanie King", Date: "05/02/2024", Grade: 90, Subject: "Linguistics",
			Email: "stephanie.king@email.com", DateJoined: "21/09/2023", Address: "369 Ash Avenue", City: "Boston", Country: "USA", Zip: "02101"},
		{ID: "100000018", Name: "Steven Walker", Date: "02/02/2024", Grade: 88, Subject: "Music Theory",
			Email: "steven.walker@email.com", DateJoined: "18/09/2023", Address: "963 Elm Court", City: "Seattle", Country: "USA", Zip: "98101"},
		{ID: "100000026", Name: "Tyler Nelson", Date: "10/02/2024", Grade: 91, Subject: "Oceanography",
			Email: "tyler.nelson@email.com", DateJoined: "26/09/2023", Address: "258 Birch Lane", City: "Las Vegas", Country: "USA", Zip: "89101"},
	}
}
