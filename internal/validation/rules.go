package validation

// MinPasswordLength is the shortest password accepted at registration and login
const MinPasswordLength = 6

var RegisterRules = []Rule{
	NotEmpty("name", "Name is required"),
	Email("email", "Email is required"),
	MinLength("password", MinPasswordLength, "Enter a proper password"),
}

var LoginRules = []Rule{
	Email("email", "Email is required"),
	MinLength("password", MinPasswordLength, "Enter a proper password"),
}

var AddressRules = []Rule{
	Text("flat", "Flat/House Number is required"),
	Text("street", "Street is required"),
	Text("landmark", "Landmark is required"),
	Text("city", "City is required"),
	Text("state", "State is required"),
	Text("country", "Country is required"),
	Text("pincode", "Pincode/Zip is required"),
	Text("mobile", "Mobile Number is required"),
}

var OrderRules = []Rule{
	NotEmpty("items", "Please provide items"),
	Number("tax", "Please provide tax"),
	Number("total", "Please provide Total"),
}

var ProductRules = []Rule{
	NotEmpty("name", "Product Name is Required"),
	NotEmpty("brand", "Product Brand is Required"),
	Number("price", "Product Price is Required"),
	Integer("qty", "Product Quantity is Required"),
	NotEmpty("image", "Product Image is Required"),
	NotEmpty("category", "Product Category is Required"),
	NotEmpty("description", "Product Description is Required"),
	NotEmpty("usage", "Product Info is Required"),
}
