package directory

type state struct {
	name     string
	branches []string
}

type bank struct {
	name   string
	states []state
}

// banks lists every selectable bank in display order. Only the first four
// carry state and branch data.
var banks = []bank{
	{
		name: "State Bank of India",
		states: []state{
			{"Maharashtra", []string{"Mumbai Main", "Pune Camp", "Nagpur Civil Lines", "Thane", "Nashik"}},
			{"Delhi", []string{"Connaught Place", "Karol Bagh", "Dwarka", "Lajpat Nagar", "Rohini"}},
			{"Karnataka", []string{"Bangalore MG Road", "Mysore Main", "Hubli", "Mangalore", "Belgaum"}},
			{"Tamil Nadu", []string{"Chennai Mount Road", "Coimbatore RS Puram", "Madurai", "Salem", "Trichy"}},
		},
	},
	{
		name: "HDFC Bank",
		states: []state{
			{"Maharashtra", []string{"Mumbai Fort", "Pune FC Road", "Nashik College Road", "Aurangabad", "Kolhapur"}},
			{"Delhi", []string{"Nehru Place", "Rajouri Garden", "Vasant Kunj", "Pitampura", "Greater Kailash"}},
			{"Karnataka", []string{"Bangalore Indiranagar", "Mysore Sayyaji Rao Road", "Mangalore City", "Udupi", "Shimoga"}},
			{"Gujarat", []string{"Ahmedabad CG Road", "Vadodara Alkapuri", "Surat Ghod Dod Road", "Rajkot", "Jamnagar"}},
		},
	},
	{
		name: "ICICI Bank",
		states: []state{
			{"Maharashtra", []string{"Mumbai Bandra", "Pune Aundh", "Nagpur Dharampeth", "Navi Mumbai", "Solapur"}},
			{"Delhi", []string{"Chandni Chowk", "South Extension", "Janakpuri", "Preet Vihar", "Model Town"}},
			{"Telangana", []string{"Hyderabad Banjara Hills", "Secunderabad", "Warangal", "Karimnagar", "Nizamabad"}},
			{"West Bengal", []string{"Kolkata Park Street", "Howrah", "Siliguri", "Durgapur", "Asansol"}},
		},
	},
	{
		name: "Axis Bank",
		states: []state{
			{"Maharashtra", []string{"Mumbai Worli", "Pune Shivaji Nagar", "Nagpur Sadar", "Amravati", "Jalgaon"}},
			{"Karnataka", []string{"Bangalore Koramangala", "Mangalore Balmatta", "Hubli Deshpande Nagar", "Dharwad", "Gulbarga"}},
			{"Gujarat", []string{"Ahmedabad Navrangpura", "Surat Adajan", "Vadodara Race Course", "Bhavnagar", "Anand"}},
			{"Kerala", []string{"Kochi Marine Drive", "Trivandrum MG Road", "Calicut", "Thrissur", "Kottayam"}},
		},
	},
	{name: "Punjab National Bank"},
	{name: "Bank of Baroda"},
	{name: "Canara Bank"},
	{name: "Union Bank of India"},
	{name: "Kotak Mahindra Bank"},
	{name: "IndusInd Bank"},
	{name: "Yes Bank"},
	{name: "Federal Bank"},
	{name: "IDBI Bank"},
	{name: "RBL Bank"},
}
