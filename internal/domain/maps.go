package domain

import "github.com/baysidedata/parcelgraph/internal/coerce"

// Canonical field maps for the three portfolio extracts. Column names and
// annotations mirror the upstream extract headers; attribute names are the
// graph schema exposed downstream.

var OwnersMap = NodeMap{
	Kind:      KindOwner,
	KeyColumn: "identifier",
	KeyAttr:   "id",
	Fields: []Field{
		{Column: "name", Attr: "name", Type: coerce.String},
		{Column: "standardizedName", Attr: "standardizedName", Type: coerce.String},
		{Column: "entityType", Attr: "entityType", Type: coerce.String},
		{Column: "ownerType", Attr: "ownerType", Type: coerce.String},
		{Column: "mailingAddress", Attr: "mailingAddress", Type: coerce.String},
		{Column: "mailingCity", Attr: "mailingCity", Type: coerce.String},
		{Column: "mailingState", Attr: "mailingState", Type: coerce.String},
		{Column: "mailingZip", Attr: "mailingZip", Type: coerce.String},
		{Column: "propertyCount", Attr: "propertyCount", Type: coerce.Int},
		{Column: "totalPortfolioValue", Attr: "totalPortfolioValue", Type: coerce.Long},
		{Column: "isOutOfState", Attr: "isOutOfState", Type: coerce.Bool},
		{Column: "isInstitutional", Attr: "isInstitutional", Type: coerce.Bool},
		{Column: "isCommercial", Attr: "isCommercial", Type: coerce.Bool},
		{Column: "isMajorLandlord", Attr: "isMajorLandlord", Type: coerce.Bool},
		{Column: "originalJointId", Attr: "originalJointId", Type: coerce.String},
		{Column: "jointOwnerNumber", Attr: "jointOwnerNumber", Type: coerce.Int},
		{Column: "sourceSystem", Attr: AttrSourceSystem, Type: coerce.String},
	},
}

var PropertiesMap = NodeMap{
	Kind:      KindProperty,
	KeyColumn: "identifier",
	KeyAttr:   "id",
	Fields: []Field{
		{Column: "address", Attr: "address", Type: coerce.String},
		{Column: "neighborhood", Attr: "neighborhood", Type: coerce.String},
		{Column: "yearBuilt", Attr: "yearBuilt", Type: coerce.Int},
		{Column: "totalRooms", Attr: "totalRooms", Type: coerce.Int},
		{Column: "bedrooms", Attr: "bedrooms", Type: coerce.Int},
		{Column: "bathrooms", Attr: "bathrooms", Type: coerce.Float},
		{Column: "buildingSqft", Attr: "buildingSqft", Type: coerce.Int},
		{Column: "lotSqft", Attr: "lotSqft", Type: coerce.Int},
		{Column: "lotAcres", Attr: "lotAcres", Type: coerce.Float},
		{Column: "currentAssessedValue", Attr: "currentAssessedValue", Type: coerce.Long},
		{Column: "priorAssessedValue", Attr: "priorAssessedValue", Type: coerce.Long},
		{Column: "currentMarketValue", Attr: "currentMarketValue", Type: coerce.Long},
		{Column: "lastSaleDate", Attr: "lastSaleDate", Type: coerce.Date},
		{Column: "lastSalePrice", Attr: "lastSalePrice", Type: coerce.Long},
		{Column: "propertyStatus", Attr: "propertyStatus", Type: coerce.String},
		{Column: "ownerOccupied", Attr: "ownerOccupied", Type: coerce.Bool},
		{Column: "rentalProperty", Attr: "rentalProperty", Type: coerce.Bool},
		{Column: "commercialProperty", Attr: "commercialProperty", Type: coerce.Bool},
		{Column: "taxExempt", Attr: "taxExempt", Type: coerce.Bool},
		{Column: "latitude", Attr: "latitude", Type: coerce.Float},
		{Column: "longitude", Attr: "longitude", Type: coerce.Float},
		{Column: "censusTractId", Attr: "censusTractId", Type: coerce.String},
		{Column: "useCodeId", Attr: "useCodeId", Type: coerce.String},
		{Column: "sourceSystem", Attr: AttrSourceSystem, Type: coerce.String},
	},
}

var OwnershipsMap = EdgeMap{
	Kind:        KindOwnership,
	StartColumn: "ownerId",
	EndColumn:   "propertyId",
	Fields: []Field{
		{Column: "ownershipType", Attr: "ownershipType", Type: coerce.String},
		{Column: "ownershipPercentage", Attr: "ownershipPercentage", Type: coerce.Float},
		{Column: "startDate", Attr: "startDate", Type: coerce.Date},
		{Column: "endDate", Attr: "endDate", Type: coerce.Date},
		{Column: "acquisitionPrice", Attr: "acquisitionPrice", Type: coerce.Long},
		{Column: "isCurrent", Attr: "isCurrent", Type: coerce.Bool},
		{Column: "originalJointId", Attr: "originalJointId", Type: coerce.String},
		{Column: "sourceSystem", Attr: AttrSourceSystem, Type: coerce.String},
	},
}
